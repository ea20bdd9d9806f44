package engine

import "strings"

// AgentResponse is the simulated tool-using agent's reply.
type AgentResponse struct {
	Answer   string        `json:"answer"`
	Metadata AgentMetadata `json:"metadata"`
}

// AgentMetadata reports the pretend function calls behind an agent reply.
type AgentMetadata struct {
	FunctionCalls  []string `json:"functionCalls"`
	ProcessingTime int      `json:"processingTime"`
	Confidence     float64  `json:"confidence,omitempty"`
	ResultsFound   int      `json:"resultsFound,omitempty"`
}

type agentData struct {
	DocumentID string
	Question   string
}

// Agent answers a free-form agent query. The document is referenced by id
// only and need not exist.
func Agent(documentID, question string) AgentResponse {
	q := strings.ToLower(question)
	data := agentData{DocumentID: documentID, Question: question}

	switch {
	case containsAll(q, "function", "call"):
		return AgentResponse{
			Answer: render("agent_function_calls", data),
			Metadata: AgentMetadata{
				FunctionCalls:  []string{"searchDocument", "extractTables", "analyzeSections"},
				ProcessingTime: 2340,
				Confidence:     0.94,
			},
		}
	case containsAll(q, "arxiv", "search"):
		return AgentResponse{
			Answer: render("agent_arxiv", data),
			Metadata: AgentMetadata{
				FunctionCalls:  []string{"searchArxiv"},
				ProcessingTime: 1890,
				ResultsFound:   3,
			},
		}
	default:
		return AgentResponse{
			Answer: render("agent_tools", data),
			Metadata: AgentMetadata{
				FunctionCalls:  []string{"parseDocument", "semanticSearch", "analyzeContent", "generateResponse"},
				ProcessingTime: 1650,
				Confidence:     0.88,
			},
		}
	}
}

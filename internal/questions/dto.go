package questions

import "paperqa-backend/internal/engine"

type askRequest struct {
	DocumentID string `json:"documentId"`
	Question   string `json:"question"`
	Context    string `json:"context"`
}

type askResponse struct {
	Answer     string         `json:"answer"`
	Sources    []string       `json:"sources"`
	Confidence float64        `json:"confidence"`
	Metadata   answerMetadata `json:"metadata"`
	Message    engine.Message `json:"message"`
}

type answerMetadata struct {
	ProcessingTime   int64           `json:"processingTime"`
	QueryType        engine.Category `json:"queryType"`
	RelevantSections []string        `json:"relevantSections"`
	ExtractedData    any             `json:"extractedData,omitempty"`
}

func toAskResponse(res Result) askResponse {
	return askResponse{
		Answer:     res.Answer,
		Sources:    res.Sources,
		Confidence: res.Confidence,
		Metadata: answerMetadata{
			ProcessingTime:   res.ProcessingTime.Milliseconds(),
			QueryType:        res.QueryType,
			RelevantSections: res.RelevantSections,
			ExtractedData:    res.ExtractedData,
		},
		Message: res.Message,
	}
}

package arxiv

import (
	"fmt"
	"strings"
	"time"

	"paperqa-backend/internal/shared/random"
)

const (
	minResults = 3
	maxResults = 5
	pdfBaseURL = "https://arxiv.org/pdf/"
)

type paperTemplate struct {
	title   string
	summary string
}

var paperTemplates = []paperTemplate{
	{
		title:   "Advanced {query} Techniques: A Comprehensive Survey and Future Directions",
		summary: "This paper presents a comprehensive survey of recent advances in {query}. We systematically review current methodologies, identify key challenges, and propose future research directions. Our analysis covers both theoretical foundations and practical applications, providing insights for researchers and practitioners. We evaluate 150+ papers published in the last five years and identify emerging trends and opportunities.",
	},
	{
		title:   "Novel Deep Learning Approaches for {query}: Experimental Validation and Performance Analysis",
		summary: "We propose novel deep learning architectures specifically designed for {query} applications. Through extensive experiments on benchmark datasets, we demonstrate significant improvements over existing methods. Our approach achieves state-of-the-art performance while maintaining computational efficiency. We provide detailed ablation studies and theoretical analysis of the proposed methods.",
	},
	{
		title:   "Scalable {query} Solutions: From Theory to Practice in Large-Scale Systems",
		summary: "This work addresses scalability challenges in {query} by proposing efficient algorithms and system architectures. We present both theoretical analysis and practical implementations that can handle large-scale real-world scenarios. Our evaluation demonstrates linear scalability and robust performance across diverse deployment environments.",
	},
	{
		title:   "Transformer-Based Models for {query}: Attention Mechanisms and Multi-Modal Integration",
		summary: "We investigate the application of transformer architectures to {query} problems, introducing novel attention mechanisms and multi-modal fusion techniques. Our approach leverages self-attention and cross-attention to capture complex relationships in the data. Experimental results show substantial improvements over traditional methods across multiple benchmarks.",
	},
	{
		title:   "Federated Learning for {query}: Privacy-Preserving Distributed Training and Inference",
		summary: "This paper explores federated learning approaches for {query} applications, addressing privacy concerns and communication efficiency. We propose novel aggregation algorithms and privacy-preserving techniques that maintain model performance while protecting sensitive data. Our framework is evaluated on realistic federated settings with heterogeneous data distributions.",
	},
}

var authorPools = [][]string{
	{"Dr. Sarah Chen", "Prof. Michael Rodriguez", "Dr. Emily Wang"},
	{"Prof. David Kim", "Dr. Lisa Thompson", "Dr. James Anderson"},
	{"Dr. Maria Garcia", "Prof. Robert Lee", "Dr. Anna Petrov", "Dr. Carlos Mendez"},
	{"Prof. Ahmed Hassan", "Dr. Jennifer Liu", "Dr. Yuki Tanaka"},
	{"Dr. Priya Sharma", "Prof. Thomas Wilson", "Dr. Elena Kowalski"},
	{"Prof. Raj Patel", "Dr. Sophie Martin", "Dr. Alex Johnson", "Dr. Nina Volkov"},
}

type categoryRule struct {
	keywords   []string
	categories []string
}

// First match wins.
var categoryRules = []categoryRule{
	{[]string{"machine learning", "ml"}, []string{"cs.LG", "stat.ML", "cs.AI"}},
	{[]string{"computer vision", "cv", "image"}, []string{"cs.CV", "cs.AI", "eess.IV"}},
	{[]string{"natural language", "nlp", "text"}, []string{"cs.CL", "cs.AI", "cs.LG"}},
	{[]string{"robotics", "robot"}, []string{"cs.RO", "cs.AI", "cs.SY"}},
	{[]string{"security", "crypto"}, []string{"cs.CR", "cs.IT", "cs.DS"}},
	{[]string{"quantum"}, []string{"quant-ph", "cs.ET", "physics.comp-ph"}},
	{[]string{"neural", "deep learning"}, []string{"cs.LG", "cs.NE", "stat.ML"}},
}

var defaultCategories = []string{"cs.AI", "cs.LG", "cs.CL"}

// Categories returns the ArXiv categories associated with a query.
func Categories(query string) []string {
	q := strings.ToLower(query)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(q, kw) {
				return append([]string(nil), rule.categories...)
			}
		}
	}
	return append([]string(nil), defaultCategories...)
}

// GeneratePapers fabricates between three and five search hits for query.
func GeneratePapers(src random.Source, now time.Time, query string) []Paper {
	n := random.Between(src, minResults, maxResults)
	categories := Categories(query)
	papers := make([]Paper, 0, n)
	for i, tmpl := range paperTemplates[:n] {
		published := time.Date(
			now.Year()-src.IntN(2),
			time.Month(src.IntN(12)+1),
			src.IntN(28)+1,
			0, 0, 0, 0, time.UTC,
		)
		updated := published.Add(time.Duration(src.Float64() * float64(30*24*time.Hour)))
		id := PaperID(published, random.Between(src, 1000, 9999))

		papers = append(papers, Paper{
			ID:              id,
			Title:           strings.ReplaceAll(tmpl.title, "{query}", query),
			Authors:         append([]string(nil), authorPools[i%len(authorPools)]...),
			Summary:         strings.ReplaceAll(tmpl.summary, "{query}", query),
			Published:       published,
			Updated:         updated,
			Categories:      append([]string(nil), categories...),
			PrimaryCategory: categories[0],
			PDFURL:          pdfBaseURL + id + ".pdf",
		})
	}
	return papers
}

// PaperID formats an ArXiv-style identifier, YYMM.NNNN.
func PaperID(published time.Time, suffix int) string {
	return fmt.Sprintf("%02d%02d.%04d", published.Year()%100, int(published.Month()), suffix)
}

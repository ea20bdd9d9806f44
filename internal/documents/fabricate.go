package documents

import "paperqa-backend/internal/shared/random"

var (
	uploadTitles = []string{
		"Advanced Machine Learning Techniques for Natural Language Processing",
		"Deep Neural Networks in Computer Vision: A Comprehensive Survey",
		"Quantum Computing Applications in Cryptography and Security",
		"Blockchain Technology and Distributed Systems Architecture",
		"Artificial Intelligence in Healthcare: Challenges and Opportunities",
		"Sustainable Energy Systems and Smart Grid Technologies",
		"Robotics and Autonomous Systems in Manufacturing",
		"Data Mining and Knowledge Discovery in Large Datasets",
	}

	uploadAuthors = [][]string{
		{"Dr. Sarah Johnson", "Prof. Michael Chen", "Dr. Emily Rodriguez"},
		{"Prof. David Kim", "Dr. Lisa Wang", "Dr. James Thompson"},
		{"Dr. Maria Garcia", "Prof. Robert Lee", "Dr. Anna Petrov"},
		{"Prof. Ahmed Hassan", "Dr. Jennifer Liu", "Dr. Carlos Mendez"},
		{"Dr. Priya Sharma", "Prof. Thomas Anderson", "Dr. Yuki Tanaka"},
	}

	uploadAbstracts = []string{
		"This paper presents a novel approach to addressing key challenges in the field through innovative methodologies and comprehensive experimental validation. Our results demonstrate significant improvements over existing approaches.",
		"We propose a new framework that combines theoretical foundations with practical applications, achieving state-of-the-art performance across multiple benchmark datasets and real-world scenarios.",
		"This research investigates advanced techniques and their applications, providing both theoretical insights and practical solutions that advance the current state of knowledge in the domain.",
	}

	uploadKeywords = [][]string{
		{"machine learning", "neural networks", "deep learning", "artificial intelligence"},
		{"computer vision", "image processing", "pattern recognition", "feature extraction"},
		{"natural language processing", "text mining", "sentiment analysis", "language models"},
		{"data science", "big data", "analytics", "statistical modeling"},
		{"cybersecurity", "cryptography", "network security", "privacy protection"},
	}
)

// fabricateStructure fills in the "extracted" metadata of an upload. None of
// it is derived from the payload.
func fabricateStructure(src random.Source, doc Document) Document {
	doc.PageCount = random.Between(src, 5, 29)
	doc.Sections = random.Between(src, 3, 10)
	doc.Tables = random.Between(src, 1, 5)
	doc.Figures = random.Between(src, 2, 9)
	doc.Equations = random.Between(src, 5, 19)
	doc.References = random.Between(src, 20, 59)
	doc.Title = random.Pick(src, uploadTitles)
	doc.Authors = clone(random.Pick(src, uploadAuthors))
	doc.Abstract = random.Pick(src, uploadAbstracts)
	doc.Keywords = clone(random.Pick(src, uploadKeywords))
	doc.Vectorized = true
	doc.ProcessingStatus = StatusCompleted
	return doc
}

func clone(in []string) []string {
	return append([]string(nil), in...)
}

package arxiv

import (
	"time"

	"paperqa-backend/internal/documents"
	"paperqa-backend/internal/shared/random"
)

var (
	importTitles = []string{
		"Attention Is All You Need: Transformer Networks for Sequence Modeling",
		"BERT: Pre-training of Deep Bidirectional Transformers for Language Understanding",
		"GPT-3: Language Models are Few-Shot Learners",
		"ResNet: Deep Residual Learning for Image Recognition",
		"YOLO: Real-Time Object Detection with Deep Neural Networks",
		"GAN: Generative Adversarial Networks for Image Synthesis",
		"AlphaGo: Mastering the Game of Go with Deep Neural Networks",
		"Word2Vec: Efficient Estimation of Word Representations in Vector Space",
	}

	importAuthors = [][]string{
		{"Ashish Vaswani", "Noam Shazeer", "Niki Parmar", "Jakob Uszkoreit"},
		{"Jacob Devlin", "Ming-Wei Chang", "Kenton Lee", "Kristina Toutanova"},
		{"Tom B. Brown", "Benjamin Mann", "Nick Ryder", "Melanie Subbiah"},
		{"Kaiming He", "Xiangyu Zhang", "Shaoqing Ren", "Jian Sun"},
		{"Joseph Redmon", "Santosh Divvala", "Ross Girshick", "Ali Farhadi"},
	}

	importAbstracts = []string{
		"The dominant sequence transduction models are based on complex recurrent or convolutional neural networks that include an encoder and a decoder. The best performing models also connect the encoder and decoder through an attention mechanism. We propose a new simple network architecture, the Transformer, based solely on attention mechanisms, dispensing with recurrence and convolutions entirely.",
		"We introduce a new language representation model called BERT, which stands for Bidirectional Encoder Representations from Transformers. Unlike recent language representation models, BERT is designed to pre-train deep bidirectional representations from unlabeled text by jointly conditioning on both left and right context in all layers.",
		"Recent work has demonstrated substantial gains on many NLP tasks and benchmarks by pre-training on a large corpus of text followed by fine-tuning on a specific task. While typically task-agnostic in architecture, this method still requires task-specific fine-tuning datasets of thousands or tens of thousands of examples.",
	}

	importKeywords = [][]string{
		{"transformer", "attention mechanism", "neural networks", "sequence modeling"},
		{"BERT", "bidirectional", "pre-training", "language understanding"},
		{"GPT", "few-shot learning", "language models", "natural language processing"},
		{"ResNet", "residual learning", "computer vision", "image recognition"},
		{"object detection", "real-time", "YOLO", "computer vision"},
	}
)

// FabricateImport builds the Document an imported paper turns into. The id
// is left for the repository to assign.
func FabricateImport(src random.Source, paperID string, now time.Time) documents.Document {
	return documents.Document{
		FileName:         "arxiv-" + paperID + ".pdf",
		Title:            random.Pick(src, importTitles),
		Authors:          append([]string(nil), random.Pick(src, importAuthors)...),
		Abstract:         random.Pick(src, importAbstracts),
		Keywords:         append([]string(nil), random.Pick(src, importKeywords)...),
		UploadedAt:       now,
		PageCount:        random.Between(src, 8, 27),
		SizeBytes:        2_000_000 + src.Int64N(8_000_000),
		MimeType:         "application/pdf",
		Vectorized:       true,
		ProcessingStatus: documents.StatusCompleted,
		Sections:         random.Between(src, 5, 10),
		Tables:           random.Between(src, 2, 5),
		Figures:          random.Between(src, 4, 11),
		Equations:        random.Between(src, 10, 29),
		References:       random.Between(src, 30, 89),
	}
}

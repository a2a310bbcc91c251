// Command analyze scores a resume file against a job description file and
// prints the analysis result as JSON. It runs the same engine as the API
// without the HTTP layer.
//
// Usage:
//
//	analyze -resume resume.pdf -job job.txt
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"ats-backend/internal/engine"
	"ats-backend/internal/extract"
	"ats-backend/internal/shared/config"
)

func main() {
	resumePath := flag.String("resume", "", "path to the resume file (pdf, docx, or txt)")
	jobPath := flag.String("job", "", "path to the job description text file")
	flag.Parse()

	if *resumePath == "" || *jobPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	resumeText, err := readDocument(*resumePath)
	if err != nil {
		log.Fatalf("read resume: %v", err)
	}
	jobBytes, err := os.ReadFile(*jobPath)
	if err != nil {
		log.Fatalf("read job description: %v", err)
	}

	cfg := config.Load()
	analyzer := engine.NewAnalyzer(engine.SelectExtractor(cfg.ExtractorMode), engine.ScoreWeights{
		Keyword:    cfg.KeywordWeight,
		Similarity: cfg.SimilarityWeight,
		Section:    cfg.SectionWeight,
	})

	result, err := analyzer.Analyze(resumeText, string(jobBytes))
	if err != nil {
		log.Fatalf("analyze: %v", err)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("encode result: %v", err)
	}
	fmt.Println(string(out))
	fmt.Fprintf(os.Stderr, "score %d (%s)\n", result.ATSScore, engine.Tier(result.ATSScore))
}

func readDocument(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return extract.FromBytes(data, "", filepath.Base(path))
}

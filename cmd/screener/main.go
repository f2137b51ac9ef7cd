// Package main provides the interactive console entry point for the ADHD
// screening engine. It asks the full DSM-5 question sequence on stdin and
// prints the screening report.
package main

import (
	"context"
	"log"
	"os"

	"github.com/dsm5-adhd-screener/internal/config"
	"github.com/dsm5-adhd-screener/internal/interview"
	"github.com/dsm5-adhd-screener/internal/service"
)

func main() {
	// Console sessions keep structured logs out of the Q&A flow: warnings
	// and above only, text format, stderr.
	logger := config.NewLogger(&config.LoggingConfig{
		Level:  "warn",
		Format: "text",
		Output: "stderr",
	})

	engine := service.NewScoringEngine(logger)
	interviewer := interview.NewInterviewer(os.Stdin, os.Stdout, engine, logger)

	if err := interviewer.Run(context.Background()); err != nil {
		log.Fatalf("Screening session failed: %v", err)
	}
}

package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/garnizeh/askhub/internal/ai"
	"github.com/garnizeh/askhub/internal/config"
	"github.com/garnizeh/askhub/pkg/ollama"
)

// Dev helper: runs one question through the AI answer engine against a local
// Ollama instance.
func main() {
	var (
		title       = flag.String("title", "How do I rotate the API keys?", "question title")
		description = flag.String("description", "Our staging keys are about to expire.", "question description")
		configPath  = flag.String("config", "", "Path to config YAML file")
	)
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	client, err := ollama.NewDefaultClient(cfg.Ollama)
	if err != nil {
		log.Fatal(err)
	}
	defer client.Close()

	engine, err := ai.NewEngine(client, cfg.Engine)
	if err != nil {
		log.Fatal(err)
	}

	answer, err := engine.GenerateAnswer(context.Background(), *title, *description)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(answer)
}

// Package main provides an interactive CLI for exercising the retrieval
// agent loop against the knowledge-base fixture with a real model.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/jmadeira/ragent"
	"github.com/jmadeira/ragent/hooks"
	"github.com/jmadeira/ragent/integrationtest/knowledgebase"
	"github.com/jmadeira/ragent/loggers"
	"github.com/jmadeira/ragent/memory"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorDim    = "\033[2m"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr,
			"%sError: %v%s\n", colorRed, err, colorReset)
		os.Exit(1)
	}
}

func run() error {
	key := os.Getenv("OPENAI_API_KEY")
	if key == "" {
		return fmt.Errorf("OPENAI_API_KEY not set")
	}

	// Full event log goes to a file, not the terminal.
	logDir := ".logs"
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	logFile, err := os.Create(filepath.Join(logDir, "cli.log"))
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}
	defer logFile.Close()

	logger := zerolog.New(logFile).With().Timestamp().Logger()

	stats := hooks.NewStats()
	registry := hooks.NewRegistry().
		Register(stats).
		Register(loggers.NewZerologHook(logger))

	llm, err := openai.New(
		openai.WithToken(key),
		openai.WithModel(ragent.ModelOpenAIGPT4oMini),
	)
	if err != nil {
		return fmt.Errorf("failed to create model: %w", err)
	}

	agent := ragent.NewAgent(llm).
		WithModelName(ragent.ModelOpenAIGPT4oMini).
		WithRetriever(knowledgebase.NewKeywordRetriever(knowledgebase.Articles, 3)).
		WithMemory(memory.NewTokenWindow(8000)).
		WithHooks(registry)

	rl, err := readline.New(colorGreen + "you> " + colorReset)
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
		rl.Close()
	}()

	fmt.Printf("%sHelp-center agent. Ask about refunds, shipping, "+
		"warranties... Type 'exit' to quit.%s\n", colorCyan, colorReset)

	log := []ragent.Message{
		ragent.NewSystemMessage(
			"You are a help-center assistant. Answer using only the " +
				"provided context. Be concise.",
		),
	}

	for {
		line, err := rl.Readline()
		if err != nil {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			break
		}

		log = append(log, ragent.NewHumanMessage(line))
		stream := agent.Run(ctx, log)
		for stream.Next() {
			msg := stream.Message()
			log = append(log, msg)
			switch m := msg.(type) {
			case ragent.RetrievalRequest:
				fmt.Printf("%s[searching: %s]%s\n",
					colorDim, m.Query, colorReset)
			case ragent.RetrievalResponse:
				fmt.Printf("%s[%d results]%s\n",
					colorDim, len(m.Results), colorReset)
			case ragent.ChatMessage:
				if text := ragent.TextContent(m); text != "" {
					fmt.Printf("%sagent>%s %s\n",
						colorYellow, colorReset, text)
				}
			}
		}
		if err := stream.Err(); err != nil {
			fmt.Fprintf(os.Stderr, "%sRun failed: %v%s\n",
				colorRed, err, colorReset)
		}
	}

	fmt.Printf("%s%d model calls, %d tokens, %d retrievals%s\n",
		colorDim, stats.ModelCalls(), stats.TotalTokens(),
		stats.Retrievals(), colorReset)
	return nil
}

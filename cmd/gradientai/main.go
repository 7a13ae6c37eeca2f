// Command gradientai sends a single prompt to the Gradient AI serverless
// inference endpoint and streams the reply to stdout. It is a smoke-test
// harness for the client library, not a chat UI.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/digitalocean/gradientai-go/config"
	"github.com/digitalocean/gradientai-go/model"
	"github.com/digitalocean/gradientai-go/provider"
)

const Version = "v0.1.0"

func main() {
	configPath := flag.String("config", "", "config file path (default ~/.config/gradientai/config.toml)")
	modelName := flag.String("model", "", "model override")
	system := flag.String("system", "", "system prompt")
	noStream := flag.Bool("no-stream", false, "wait for the full reply instead of streaming")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Printf("gradientai %s\n", Version)
		return
	}

	prompt := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if prompt == "" {
		// No prompt argument: read it from stdin so the command pipes.
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to read prompt: %v\n", err)
			os.Exit(1)
		}
		prompt = strings.TrimSpace(string(data))
	}
	if prompt == "" {
		fmt.Fprintln(os.Stderr, "Usage: gradientai [flags] <prompt>")
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg, err := resolveConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *modelName != "" {
		cfg.Model = *modelName
	}

	accessKey, opts := cfg.Options()
	client, err := provider.New(accessKey, opts...)
	if err != nil {
		if errors.Is(err, provider.ErrMissingAccessKey) {
			fmt.Fprintln(os.Stderr, "Missing access key: set GRADIENTAI_ACCESS_KEY or add access_key to the config file.")
		} else {
			fmt.Fprintf(os.Stderr, "Failed to create client: %v\n", err)
		}
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var messages []model.Message
	if *system != "" {
		messages = append(messages, model.NewTextMessage(model.RoleSystem, *system))
	}
	messages = append(messages, model.NewTextMessage(model.RoleUser, prompt))

	req := provider.ChatRequest{Messages: messages}

	if *noStream {
		resp, err := client.Chat(ctx, req)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Chat failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(resp.Message.Text())
		return
	}

	seq, err := client.StreamChat(ctx, req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Chat failed: %v\n", err)
		os.Exit(1)
	}
	for resp, err := range seq {
		if err != nil {
			fmt.Fprintf(os.Stderr, "\nStream failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(resp.Delta)
	}
	fmt.Println()
}

// resolveConfig loads from an explicit path when given, otherwise from the
// default location.
func resolveConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFrom(config.ExpandPath(path))
	}
	return config.Load()
}

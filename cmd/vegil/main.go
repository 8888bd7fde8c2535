// Command vegil runs one assessment from the command line and prints the
// verdict as JSON. With no credentials in the environment it runs
// heuristics-only, which makes it usable fully offline.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/Rayxworld/Vegil/internal/config"
	"github.com/Rayxworld/Vegil/internal/heuristics"
	"github.com/Rayxworld/Vegil/internal/mailinput"
	"github.com/Rayxworld/Vegil/internal/scanner"
)

const usage = `Usage:
  vegil link <url>
  vegil email <text>
  vegil eml <path|->
  vegil x <handle>
`

func main() {
	configPath := flag.String("config", "vegil.yaml", "Path to Vegil config file")
	flag.Parse()

	if flag.NArg() < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if err := config.Validate(cfg); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	ctx := context.Background()
	sc := scanner.FromConfig(ctx, cfg, nil)

	subject, arg := flag.Arg(0), flag.Arg(1)

	var out any
	switch subject {
	case "link":
		out = sc.AssessURL(ctx, arg)
	case "email":
		out = sc.AssessEmail(ctx, arg)
	case "x":
		out = sc.AssessHandle(ctx, arg)
	case "eml":
		out = assessEML(ctx, sc, arg)
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatalf("failed to encode verdict: %v", err)
	}
}

type emlResult struct {
	Subject      string `json:"subject"`
	From         string `json:"from"`
	SenderDomain string `json:"sender_domain,omitempty"`
	LookalikeOf  string `json:"lookalike_of,omitempty"`
	Verdict      any    `json:"verdict"`
}

func assessEML(ctx context.Context, sc *scanner.Scanner, path string) emlResult {
	f := os.Stdin
	if path != "-" {
		var err error
		f, err = os.Open(path)
		if err != nil {
			log.Fatalf("failed to open %s: %v", path, err)
		}
		defer f.Close()
	}

	msg, err := mailinput.Read(f)
	if err != nil {
		log.Fatalf("failed to parse email: %v", err)
	}

	content := msg.Subject
	if msg.Text != "" {
		content += "\n\n" + msg.Text
	}

	res := emlResult{
		Subject:      msg.Subject,
		From:         msg.From,
		SenderDomain: msg.SenderDomain,
		Verdict:      sc.AssessEmail(ctx, content),
	}
	if brand, hit := mailinput.Lookalike(msg.SenderDomain, heuristics.DefaultLists().Brands); hit {
		res.LookalikeOf = brand
	}
	return res
}

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/untappd-tools/untappd-go/pkg/untappd"
	"go.uber.org/zap"
)

func usage() {
	fmt.Fprintf(os.Stderr, `usage:
  untappd -auth-url
  untappd -exchange CODE
  untappd ACCESSOR [ARG] [key=value ...]

Credentials are read from the environment (UNTAPPD_CLIENT_ID,
UNTAPPD_CLIENT_SECRET, UNTAPPD_REDIRECT_URL, optional UNTAPPD_USER_AGENT and
UNTAPPD_ACCESS_TOKEN) or a .env file.

examples:
  untappd beer.info 3839
  untappd search.beer q="dogfish 60" limit=5
  untappd user.checkins gregavola compact=true
`)
	os.Exit(2)
}

func main() {
	authURL := flag.Bool("auth-url", false, "print the OAuth authorization URL")
	exchange := flag.String("exchange", "", "exchange an authorization code for an access token")
	flag.Usage = usage
	flag.Parse()

	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Load configuration
	cfg, err := untappd.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	client, err := untappd.NewClientWithLogger(cfg, logger)
	if err != nil {
		logger.Error("Failed to create client", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Failed to create client: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	switch {
	case *authURL:
		fmt.Println(client.OAuth.GetAuthURL())
		return

	case *exchange != "":
		token, err := client.OAuth.GetAccessToken(ctx, *exchange)
		if err != nil {
			logger.Error("Token exchange failed", zap.Error(err))
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(token)
		return
	}

	args := flag.Args()
	if len(args) == 0 {
		usage()
	}

	accessor := args[0]
	positional, params := parseArgs(args[1:])

	resp, err := client.Call(ctx, accessor, positional, params)
	if err != nil {
		logger.Error("Endpoint call failed",
			zap.Error(err),
			zap.String("accessor", accessor))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, resp.Response, "", "  "); err != nil {
		fmt.Println(string(resp.Response))
		return
	}
	fmt.Println(pretty.String())
}

// parseArgs splits trailing arguments into one optional positional argument
// and key=value query parameters, converting bools and numbers so they
// serialize the way the API expects.
func parseArgs(args []string) (string, untappd.Params) {
	positional := ""
	params := untappd.Params{}
	for i, a := range args {
		key, value, ok := strings.Cut(a, "=")
		if !ok {
			if i == 0 {
				positional = a
				continue
			}
			fmt.Fprintf(os.Stderr, "Ignoring argument %q: expected key=value\n", a)
			continue
		}
		switch {
		case value == "true" || value == "false":
			params[key] = value == "true"
		default:
			if n, err := strconv.Atoi(value); err == nil {
				params[key] = n
			} else {
				params[key] = value
			}
		}
	}
	return positional, params
}

package main

import (
	"fmt"
	"os"

	"github.com/oarkflow/date"
	"github.com/oarkflow/json"
	"github.com/oarkflow/log"
	"github.com/urfave/cli/v2"

	"github.com/Autsav24/EDIX12/pkg/claimstatus"
	"github.com/Autsav24/EDIX12/pkg/config"
	"github.com/Autsav24/EDIX12/pkg/eligibility"
	"github.com/Autsav24/EDIX12/pkg/remit"
	"github.com/Autsav24/EDIX12/pkg/server"
	"github.com/Autsav24/EDIX12/pkg/textinput"
	"github.com/Autsav24/EDIX12/pkg/x12"
)

func main() {
	app := &cli.App{
		Name:  "edix12",
		Usage: "Build, parse and validate X12 healthcare transactions",
		Commands: []*cli.Command{
			{
				Name:  "build",
				Usage: "Build an outbound transaction from a JSON request file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "type",
						Aliases:  []string{"t"},
						Usage:    "Transaction set: 270, 276, 835 or 837",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "request",
						Aliases:  []string{"r"},
						Usage:    "Path to the JSON request file",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "profile",
						Value: "default",
						Usage: "Payer profile key (270 only)",
					},
					&cli.StringFlag{
						Name:  "profiles-file",
						Usage: "YAML profile file shadowing the built-ins",
					},
					&cli.StringFlag{
						Name:    "out",
						Aliases: []string{"o"},
						Usage:   "Output file (default stdout)",
					},
				},
				Action: runBuild,
			},
			{
				Name:  "parse",
				Usage: "Parse an inbound transaction file to JSON",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "type",
						Aliases:  []string{"t"},
						Usage:    "Transaction set: 271, 277 or 835",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "file",
						Aliases:  []string{"f"},
						Usage:    "Path to the EDI file (text or ZIP)",
						Required: true,
					},
				},
				Action: runParse,
			},
			{
				Name:  "validate",
				Usage: "Report ST/SE envelope findings for a file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "file",
						Aliases:  []string{"f"},
						Usage:    "Path to the EDI file",
						Required: true,
					},
				},
				Action: runValidate,
			},
			{
				Name:  "serve",
				Usage: "Start the HTTP service",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to the YAML configuration file",
					},
					&cli.StringFlag{
						Name:  "listen",
						Usage: "Listen address override, e.g. :9090",
					},
				},
				Action: runServe,
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Printf("error: %v", err)
		os.Exit(1)
	}
}

// normalizeDate accepts flexible date spellings and returns CCYYMMDD.
// Unparseable values pass through for the builder to emit verbatim.
func normalizeDate(s string) string {
	if s == "" {
		return ""
	}
	if t, err := date.Parse(s); err == nil {
		return t.Format("20060102")
	}
	return s
}

func readRequest(path string, target any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("parse request %s: %w", path, err)
	}
	return nil
}

func writeOutput(c *cli.Context, content string) error {
	if out := c.String("out"); out != "" {
		return os.WriteFile(out, []byte(content), 0o644)
	}
	fmt.Println(content)
	return nil
}

func runBuild(c *cli.Context) error {
	path := c.String("request")
	var doc string

	switch c.String("type") {
	case "270":
		var req eligibility.Request270
		if err := readRequest(path, &req); err != nil {
			return err
		}
		req.DateStart = normalizeDate(req.DateStart)
		req.DateEnd = normalizeDate(req.DateEnd)
		req.DOB = normalizeDate(req.DOB)
		profile, err := resolveProfile(c)
		if err != nil {
			return err
		}
		doc = eligibility.Build270(req, profile)
	case "276":
		var req claimstatus.Request276
		if err := readRequest(path, &req); err != nil {
			return err
		}
		req.DateOfService = normalizeDate(req.DateOfService)
		doc = claimstatus.Build276(req)
	case "835":
		var req remit.Request835
		if err := readRequest(path, &req); err != nil {
			return err
		}
		req.PaymentDate = normalizeDate(req.PaymentDate)
		doc = remit.Build835(req)
	case "837":
		var req remit.Request837
		if err := readRequest(path, &req); err != nil {
			return err
		}
		req.DOSStart = normalizeDate(req.DOSStart)
		req.DOSEnd = normalizeDate(req.DOSEnd)
		doc = remit.Build837(req)
	default:
		return fmt.Errorf("unsupported build type %q", c.String("type"))
	}

	for _, warning := range x12.ValidateEnvelope(doc) {
		log.Printf("warning: %s", warning)
	}
	return writeOutput(c, doc)
}

func resolveProfile(c *cli.Context) (eligibility.Profile, error) {
	cfg := config.Default()
	cfg.ProfilesFile = c.String("profiles-file")
	profiles, err := cfg.Profiles()
	if err != nil {
		return eligibility.Profile{}, err
	}
	key := c.String("profile")
	profile, ok := profiles[key]
	if !ok {
		return eligibility.Profile{}, fmt.Errorf("unknown profile %q", key)
	}
	return profile, nil
}

func runParse(c *cli.Context) error {
	raw, err := os.ReadFile(c.String("file"))
	if err != nil {
		return err
	}
	text, err := textinput.Decode(raw)
	if err != nil {
		return err
	}

	var result any
	switch c.String("type") {
	case "271":
		result = eligibility.Parse271(text)
	case "277":
		result = claimstatus.Parse277(text)
	case "835":
		result = remit.Parse835(text)
	default:
		return fmt.Errorf("unsupported parse type %q", c.String("type"))
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func runValidate(c *cli.Context) error {
	raw, err := os.ReadFile(c.String("file"))
	if err != nil {
		return err
	}
	text, err := textinput.Decode(raw)
	if err != nil {
		return err
	}
	warnings := x12.ValidateEnvelope(text)
	if len(warnings) == 0 {
		fmt.Println("ok")
		return nil
	}
	for _, warning := range warnings {
		fmt.Println(warning)
	}
	return cli.Exit(fmt.Sprintf("%d finding(s)", len(warnings)), 1)
}

func runServe(c *cli.Context) error {
	cfg := config.Default()
	if path := c.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if listen := c.String("listen"); listen != "" {
		cfg.Listen = listen
	}

	s, err := server.New(cfg)
	if err != nil {
		return err
	}
	log.Printf("listening on %s", cfg.Listen)
	return s.Listen()
}

// Command pwf validates PWF documents from a file or stdin. Issues print
// one per line as "path: message"; a nonzero exit means the document is
// invalid. With -write the validated document is re-encoded to stdout in
// canonical form.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/meltforce/pwf"
)

func main() {
	kind := flag.String("kind", "plan", "document kind: plan or history")
	file := flag.String("file", "-", "document path, - for stdin")
	write := flag.Bool("write", false, "print the normalized document on success")
	flag.Parse()

	text, err := readInput(*file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pwf: %v\n", err)
		os.Exit(2)
	}

	var issues []pwf.ValidationIssue
	switch *kind {
	case "plan":
		result := pwf.ParsePlan(text)
		issues = result.Issues
		if result.Valid() && *write {
			out, err := pwf.Encode(result.Plan)
			if err != nil {
				fmt.Fprintf(os.Stderr, "pwf: %v\n", err)
				os.Exit(2)
			}
			fmt.Print(out)
		}
	case "history":
		result := pwf.ParseHistory(text)
		issues = result.Issues
		if result.Valid() && *write {
			out, err := pwf.Encode(result.History)
			if err != nil {
				fmt.Fprintf(os.Stderr, "pwf: %v\n", err)
				os.Exit(2)
			}
			fmt.Print(out)
		}
	default:
		fmt.Fprintf(os.Stderr, "Usage: pwf -kind plan|history [-file doc.yaml] [-write]\n")
		flag.PrintDefaults()
		os.Exit(2)
	}

	if len(issues) > 0 {
		for _, issue := range issues {
			path := issue.Path
			if path == "" {
				path = "(document)"
			}
			fmt.Fprintf(os.Stderr, "%s: %s\n", path, issue.Message)
		}
		os.Exit(1)
	}
}

func readInput(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// brandlens is the brand-insight API server: conversational analytics over
// OpenAI-compatible and Ollama chat backends.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

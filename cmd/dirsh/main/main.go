package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/dirsh/internal/cli"
	"github.com/arthur-debert/dirsh/pkg/ui/styles"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Print the error in red
		errorStyle := styles.New(styles.Enabled()).Error
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}

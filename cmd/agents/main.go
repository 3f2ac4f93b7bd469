// Copyright (c) Microsoft. All rights reserved.

// Command agents runs the commerce agent workflows: a single-agent
// campaign writer, the three-stage content pipeline, and the MCP tool
// server the pipeline can call out to.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

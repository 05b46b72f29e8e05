/*
 * Copyright © 2025 NIEHS Data Commons, All rights reserved.
 */

package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

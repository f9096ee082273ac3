// SPDX-License-Identifier: MIT

// Command copurchase loads a co-purchase edge list, computes degree,
// sampled closeness and clustering metrics, and writes a report plus
// bar charts.
package main

import "github.com/katalvlaran/copurchase/cmd/copurchase/commands"

func main() {
	commands.Execute()
}

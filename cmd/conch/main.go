// SPDX-License-Identifier: MPL-2.0

// Command conch demonstrates the toolkit: a styled prompt, progress
// widgets, a declarative CLI dispatcher, and an interactive shell that can
// also be served over SSH.
package main

func main() {
	Execute()
}

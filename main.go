// SPDX-License-Identifier: MPL-2.0

package main

import cmd "pitvolut/cmd/pitvolut"

func main() {
	cmd.Execute()
}

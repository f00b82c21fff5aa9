/*
main.go

Copyright © 2025 Code Monkey Cybersecurity
Contact: git@cybermonkey.net.au

This file is part of Aegis.

This software is dual-licensed under the Do No Harm License
and the GNU Affero General Public License v3 (AGPL-3.0-or-later).
You may use, modify, and distribute it under the terms of either license.
*/
package main

import (
	"github.com/CodeMonkeyCybersecurity/aegis/cmd"
	"github.com/CodeMonkeyCybersecurity/aegis/pkg/logger"
)

func main() {
	logger.InitFallback()
	cmd.Execute()
}

// Copyright 2026 EthosGate Ltd.
// SPDX-License-Identifier: AGPL-3.0

package main

import "github.com/ethosgate/access-service/cmd"

func main() {
	cmd.Execute()
}

// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	_ "github.com/33cn/redvsblue/plugin"
	"github.com/33cn/redvsblue/util/cli"
)

func main() {
	cli.Run("redvsblue", os.Getenv("REDVSBLUE_RPC"))
}

// Copyright 2023 GreyXor. All rights reserved.
// Mount of this source code is governed by a MIT license that can be found
// at https://gitlab.com/greyxor/slogor/-/blob/main/LICENSE?ref_type=heads.

package ansi

import (
	"os"

	"golang.org/x/sys/windows"
)

// init enables virtual terminal processing on both standard streams, the pretty
// handler writes errors to stderr and everything else to stdout.
func init() {
	for _, f := range []*os.File{os.Stdout, os.Stderr} {
		enableVirtualTerminal(windows.Handle(f.Fd()))
	}
}

func enableVirtualTerminal(h windows.Handle) {
	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		// Not a console, e.g. redirected to a file.
		return
	}
	_ = windows.SetConsoleMode(h, mode|windows.ENABLE_PROCESSED_OUTPUT|
		windows.ENABLE_WRAP_AT_EOL_OUTPUT|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING)
}

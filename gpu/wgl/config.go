// SPDX-License-Identifier: Unlicense OR MIT

package wgl

import (
	"os"
	"strings"
)

// InstanceFlags controls debugging aids of an Instance.
type InstanceFlags uint32

const (
	// InstanceFlagDebug requests a debug context.
	InstanceFlagDebug InstanceFlags = 1 << iota
	// InstanceFlagValidation enables GL debug output, logged through
	// the package logger.
	InstanceFlagValidation
)

// InstanceDescriptor configures NewInstance.
type InstanceDescriptor struct {
	// Name identifies the instance in log output.
	Name  string
	Flags InstanceFlags
}

// InstanceFlagsFromEnv returns flags with WGPU_DEBUG and WGPU_VALIDATION
// applied. A variable set to "1" or "true" sets the flag, "0" or "false"
// clears it, and anything else leaves it unchanged.
func InstanceFlagsFromEnv(flags InstanceFlags) InstanceFlags {
	flags = applyEnvFlag(flags, InstanceFlagDebug, os.Getenv("WGPU_DEBUG"))
	flags = applyEnvFlag(flags, InstanceFlagValidation, os.Getenv("WGPU_VALIDATION"))
	return flags
}

func applyEnvFlag(flags, flag InstanceFlags, v string) InstanceFlags {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true":
		return flags | flag
	case "0", "false":
		return flags &^ flag
	}
	return flags
}

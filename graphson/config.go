/**
 * Copyright (c) 2019, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package graphson

import (
	"fmt"
)

// Version selects the wire format.
type Version uint8

// Enumeration of Version
const (
	// V1 writes values in their natural shape. Graph elements may carry an "@class" hint.
	V1 Version = iota + 1

	// V2 wraps tagged values in {"@type": tag, "@value": value}. Containers keep their natural shape.
	V2

	// V3 is V2 with typed containers: maps, lists and sets are tagged and flattened into arrays.
	V3
)

// LatestVersion is the version used when Config.Version is not set.
const LatestVersion = V3

func (version Version) String() string {
	switch version {
	case V1:
		return "v1"
	case V2:
		return "v2"
	case V3:
		return "v3"
	}
	return fmt.Sprintf("Version(%d)", uint8(version))
}

// ParseVersion converts "v1", "1", "v2", ... to a Version.
func ParseVersion(s string) (Version, error) {
	switch s {
	case "v1", "V1", "1", "1.0":
		return V1, nil
	case "v2", "V2", "2", "2.0":
		return V2, nil
	case "v3", "V3", "3", "3.0":
		return V3, nil
	}
	return 0, NewError(fmt.Sprintf("unknown GraphSON version %q", s), Op("graphson.ParseVersion"),
		ErrKindConfiguration)
}

// Typing is the type embedding policy.
type Typing uint8

// Enumeration of Typing
const (
	// TypingAuto selects the default of the version: NoTypes for V1, PartialTypes for V2 and V3.
	TypingAuto Typing = iota

	// NoTypes writes every value in its natural shape.
	NoTypes

	// PartialTypes tags every value whose type has a tag. Strings, booleans and null are never
	// tagged.
	PartialTypes
)

func (typing Typing) String() string {
	switch typing {
	case TypingAuto:
		return "auto"
	case NoTypes:
		return "no-types"
	case PartialTypes:
		return "partial-types"
	}
	return fmt.Sprintf("Typing(%d)", uint8(typing))
}

// Config specifies the wire format a Mapper reads and writes and the modules it knows about.
type Config struct {
	// (Optional) Version of the wire format. Default is LatestVersion.
	Version Version

	// (Optional) Type embedding policy. Default is TypingAuto. V3 requires PartialTypes; asking for
	// NoTypes with V3 fails NewMapper with ErrKindVersionConstraint.
	Typing Typing

	// (Optional) Normalize sorts map entries by key so the same value is always written the same way.
	Normalize bool

	// (Optional) Extension modules added on top of the core module of the version, in order.
	Modules []*Module

	// (Optional) AutoDiscover adds the modules of every provider registered through
	// RegisterModuleProvider.
	AutoDiscover bool
}

// resolve applies the defaults and checks the version and typing combination.
func (config *Config) resolve() (Version, Typing, error) {
	const op Op = "graphson.NewMapper"

	version := config.Version
	if version == 0 {
		version = LatestVersion
	}
	if version < V1 || version > V3 {
		return 0, 0, NewError(fmt.Sprintf("unsupported GraphSON version %s", version), op,
			ErrKindVersionConstraint)
	}

	typing := config.Typing
	switch typing {
	case TypingAuto:
		if version == V1 {
			typing = NoTypes
		} else {
			typing = PartialTypes
		}
	case NoTypes, PartialTypes:
	default:
		return 0, 0, NewError(fmt.Sprintf("unsupported typing %s", typing), op, ErrKindConfiguration)
	}

	if version == V3 && typing == NoTypes {
		return 0, 0, NewError("GraphSON 3.0 requires embedded types", op, ErrKindVersionConstraint)
	}

	return version, typing, nil
}

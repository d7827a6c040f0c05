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
	"context"
	"strings"
	"time"

	"github.com/botobag/graphson/internal/util"

	"github.com/zoobzio/capitan"
)

// Signals emitted by Mapper
var (
	SignalMapperBuilt    = capitan.NewSignal("graphson.mapper.built", "Mapper assembled from its modules")
	SignalUnknownTag     = capitan.NewSignal("graphson.unknown-tag", "Unregistered type tag read as a string")
	SignalEncodeComplete = capitan.NewSignal("graphson.encode.complete", "Encode operation finished")
	SignalDecodeComplete = capitan.NewSignal("graphson.decode.complete", "Decode operation finished")
)

// Keys for typed event data
var (
	KeyVersion     = capitan.NewStringKey("version")
	KeyTyping      = capitan.NewStringKey("typing")
	KeyModules     = capitan.NewStringKey("modules")
	KeyTypeCount   = capitan.NewIntKey("type_count")
	KeyTag         = capitan.NewStringKey("tag")
	KeySuggestions = capitan.NewStringKey("suggestions")
	KeySize        = capitan.NewIntKey("size")
	KeyDuration    = capitan.NewDurationKey("duration")
	KeyError       = capitan.NewErrorKey("error")
)

// The codec takes no context of its own.
var signalContext = context.Background()

func emitMapperBuilt(mapper *Mapper) {
	names := make([]string, len(mapper.modules))
	for i, module := range mapper.modules {
		names[i] = module.Name
	}
	capitan.Emit(signalContext, SignalMapperBuilt,
		KeyVersion.Field(mapper.version.String()),
		KeyTyping.Field(mapper.typing.String()),
		KeyModules.Field(strings.Join(names, ",")),
		KeyTypeCount.Field(mapper.registry.Len()),
	)
}

// emitUnknownTag reports a tag absorbed as a string along with the registered tags closest to it.
func emitUnknownTag(mapper *Mapper, tag Tag) {
	registered := mapper.registry.Tags()
	options := make([]string, len(registered))
	for i, t := range registered {
		options[i] = string(t)
	}

	suggestions := util.OrList(util.SuggestionList(string(tag), options), 5, false)

	capitan.Error(signalContext, SignalUnknownTag,
		KeyVersion.Field(mapper.version.String()),
		KeyTag.Field(string(tag)),
		KeySuggestions.Field(suggestions),
		KeyError.Field(NewError("unknown type tag", Op("graphson.Reader.ReadValue"), tag, ErrKindUnknownTypeTag)),
	)
}

func emitEncodeComplete(mapper *Mapper, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyVersion.Field(mapper.version.String()),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(signalContext, SignalEncodeComplete, fields...)
	} else {
		capitan.Emit(signalContext, SignalEncodeComplete, fields...)
	}
}

func emitDecodeComplete(mapper *Mapper, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyVersion.Field(mapper.version.String()),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(signalContext, SignalDecodeComplete, fields...)
	} else {
		capitan.Emit(signalContext, SignalDecodeComplete, fields...)
	}
}

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

package process

import (
	"reflect"
)

// Strategy is a traversal strategy with its configuration. Strategies are told apart by their Go
// type; the type name is the strategy name.
type Strategy interface {
	Configuration() map[string]interface{}
}

// StrategyConfig is the configuration of a strategy. Strategy types embed it.
type StrategyConfig map[string]interface{}

// Configuration implements Strategy.
func (config StrategyConfig) Configuration() map[string]interface{} {
	return config
}

// Decoration strategies
type (
	ConnectiveStrategy      struct{ StrategyConfig }
	ElementIdStrategy       struct{ StrategyConfig }
	HaltedTraverserStrategy struct{ StrategyConfig }
	OptionsStrategy         struct{ StrategyConfig }
	PartitionStrategy       struct{ StrategyConfig }
	SeedStrategy            struct{ StrategyConfig }
	SubgraphStrategy        struct{ StrategyConfig }
	VertexProgramStrategy   struct{ StrategyConfig }
)

// Finalization strategies
type (
	MatchAlgorithmStrategy struct{ StrategyConfig }
)

// Optimization strategies
type (
	AdjacentToIncidentStrategy struct{ StrategyConfig }
	CountStrategy              struct{ StrategyConfig }
	EarlyLimitStrategy         struct{ StrategyConfig }
	FilterRankingStrategy      struct{ StrategyConfig }
	IdentityRemovalStrategy    struct{ StrategyConfig }
	IncidentToAdjacentStrategy struct{ StrategyConfig }
	InlineFilterStrategy       struct{ StrategyConfig }
	LazyBarrierStrategy        struct{ StrategyConfig }
	MatchPredicateStrategy     struct{ StrategyConfig }
	OrderLimitStrategy         struct{ StrategyConfig }
	PathProcessorStrategy      struct{ StrategyConfig }
	PathRetractionStrategy     struct{ StrategyConfig }
	RepeatUnrollStrategy       struct{ StrategyConfig }
	GraphFilterStrategy        struct{ StrategyConfig }
)

// Verification strategies
type (
	EdgeLabelVerificationStrategy    struct{ StrategyConfig }
	LambdaRestrictionStrategy        struct{ StrategyConfig }
	ReadOnlyStrategy                 struct{ StrategyConfig }
	ReservedKeysVerificationStrategy struct{ StrategyConfig }
)

// Strategies has a value of every strategy type.
var Strategies = []Strategy{
	ConnectiveStrategy{},
	ElementIdStrategy{},
	HaltedTraverserStrategy{},
	OptionsStrategy{},
	PartitionStrategy{},
	SeedStrategy{},
	SubgraphStrategy{},
	VertexProgramStrategy{},
	MatchAlgorithmStrategy{},
	AdjacentToIncidentStrategy{},
	CountStrategy{},
	EarlyLimitStrategy{},
	FilterRankingStrategy{},
	IdentityRemovalStrategy{},
	IncidentToAdjacentStrategy{},
	InlineFilterStrategy{},
	LazyBarrierStrategy{},
	MatchPredicateStrategy{},
	OrderLimitStrategy{},
	PathProcessorStrategy{},
	PathRetractionStrategy{},
	RepeatUnrollStrategy{},
	GraphFilterStrategy{},
	EdgeLabelVerificationStrategy{},
	LambdaRestrictionStrategy{},
	ReadOnlyStrategy{},
	ReservedKeysVerificationStrategy{},
}

// StrategyName returns the name of a strategy.
func StrategyName(strategy Strategy) string {
	t := reflect.TypeOf(strategy)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// NewStrategy creates a strategy of type t with config. t must be the type of one of Strategies.
func NewStrategy(t reflect.Type, config map[string]interface{}) Strategy {
	strategy := reflect.New(t).Elem()
	strategy.Field(0).Set(reflect.ValueOf(StrategyConfig(config)))
	return strategy.Interface().(Strategy)
}

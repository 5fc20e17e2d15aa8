package policy

import (
	"context"

	"github.com/zoobzio/capitan"
)

// SignalPolicyLoaded fires when a policy file has been parsed and
// compiled.
var SignalPolicyLoaded = capitan.NewSignal("sensitive.policy.loaded", "Redaction policy loaded")

var (
	keySource    = capitan.NewStringKey("source")
	keyRuleCount = capitan.NewIntKey("rule_count")
)

func emitPolicyLoaded(source string, rules int) {
	capitan.Emit(context.Background(), SignalPolicyLoaded,
		keySource.Field(source),
		keyRuleCount.Field(rules),
	)
}

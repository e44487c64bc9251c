// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// OrphanedViolationsDropped counts violation rows excluded from aggregation
// because their approval rule reference is gone. The rows are dropped
// silently - the counter exists so the drop does not stay invisible.
var OrphanedViolationsDropped = promauto.NewCounter(prometheus.CounterOpts{
	Name: "mergeguard_orphaned_violations_dropped_total",
	Help: "Violation rows without an associated approval rule that were excluded from aggregation",
})

// BypassDecisions counts bypass checks by route and outcome.
var BypassDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "mergeguard_policy_bypass_decisions_total",
	Help: "Policy bypass decisions by bypass type and outcome",
}, []string{"bypass_type", "outcome"})

// ViolationCommentRefreshes counts merge request violation comment rebuilds.
var ViolationCommentRefreshes = promauto.NewCounter(prometheus.CounterOpts{
	Name: "mergeguard_violation_comment_refreshes_total",
	Help: "Number of merge request violation comment refreshes",
})

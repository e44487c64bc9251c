// Copyright (C) 2025 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package monitoring

import (
	"log/slog"

	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"
)

// Alert reports an unexpected error to the error tracker and mirrors it to
// the log. The event id is nil when no tracker is configured.
func Alert(message string, err error) {
	eventID := sentry.CurrentHub().CaptureException(errors.Wrap(err, message))
	slog.Error(message, "err", err, "sentryEventID", eventID)
}

// RecoverAndAlert is Alert for recovered panics.
func RecoverAndAlert(message string, err error) {
	eventID := sentry.CurrentHub().Recover(err)
	slog.Error(message, "err", err, "recovered", true, "sentryEventID", eventID)
}

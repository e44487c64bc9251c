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

package licenses

import (
	_ "embed"
	"encoding/json"
	"log/slog"
	"strings"
)

//go:embed spdx-licenses.json
var licensesFile []byte

type License struct {
	Name          string `json:"name"`
	LicenseID     string `json:"licenseId"`
	Reference     string `json:"reference"`
	IsOsiApproved bool   `json:"isOsiApproved"`
}

type licenseList struct {
	Licenses []License `json:"licenses"`
}

// LicenseMap is keyed by the lowercased SPDX identifier and by the
// lowercased full license name.
var LicenseMap = make(map[string]License)

func init() {
	var list licenseList
	if err := json.Unmarshal(licensesFile, &list); err != nil {
		slog.Error("could not unmarshal embedded license list", "err", err)
		return
	}

	for _, l := range list.Licenses {
		LicenseMap[strings.ToLower(l.LicenseID)] = l
		LicenseMap[strings.ToLower(l.Name)] = l
	}
}

// Lookup returns the license record matching the given name by exact
// string comparison against the SPDX identifier or full name.
func Lookup(name string) (License, bool) {
	l, ok := LicenseMap[strings.ToLower(strings.TrimSpace(name))]
	return l, ok
}

// ReferenceURL returns the SPDX reference url for the given license name
// or the empty string if the name is unknown.
func ReferenceURL(name string) string {
	l, ok := Lookup(name)
	if !ok {
		return ""
	}
	return l.Reference
}

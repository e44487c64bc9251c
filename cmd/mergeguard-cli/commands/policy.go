// Copyright (C) 2026 l3montree GmbH
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

package commands

import (
	"fmt"
	"os"
	"sort"

	types "github.com/mergeguard/mergeguard/database/types"
	"github.com/mergeguard/mergeguard/policy"
	"github.com/mergeguard/mergeguard/utils"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var knownContentKeys = map[string]bool{
	"enforcement_type":  true,
	"fallback_behavior": true,
	"policy_tuning":     true,
	"bypass_settings":   true,
	"actions":           true,
	"approval_settings": true,
	"rules":             true,
	"policy_scope":      true,
}

func NewPolicyCommand() *cobra.Command {
	policyCmd := cobra.Command{
		Use:   "policy",
		Short: "Inspect and validate policy documents",
	}

	policyCmd.AddCommand(newLintCommand())
	policyCmd.AddCommand(newShowCommand())
	return &policyCmd
}

func loadPolicyFile(path string) (policy.Content, types.JSONB, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return policy.Content{}, nil, errors.Wrap(err, "could not read policy file")
	}

	var doc map[string]any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return policy.Content{}, nil, errors.Wrap(err, "could not parse yaml")
	}

	content, err := policy.ParseContent(types.JSONB(doc))
	if err != nil {
		return policy.Content{}, nil, errors.Wrap(err, "could not parse policy content")
	}
	return content, types.JSONB(doc), nil
}

type lintReport struct {
	path  string
	lines []string
}

func lintPolicyFile(path string) (lintReport, error) {
	content, doc, err := loadPolicyFile(path)
	if err != nil {
		return lintReport{}, errors.Wrapf(err, "%s", path)
	}

	report := lintReport{path: path}

	var unknown []string
	for key := range doc {
		if !knownContentKeys[key] {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	for _, key := range unknown {
		report.lines = append(report.lines, fmt.Sprintf("unknown field: %s", key))
	}

	if _, ok := doc["enforcement_type"]; !ok {
		report.lines = append(report.lines, "enforcement_type absent, defaulting to enforce")
	}
	if _, ok := doc["fallback_behavior"]; !ok {
		report.lines = append(report.lines, "fallback_behavior absent, defaulting to closed")
	}
	if len(content.Rules) == 0 {
		report.lines = append(report.lines, "policy has no rules, it will never trigger")
	}
	for i, rule := range content.Rules {
		switch rule.Kind {
		case policy.RuleKindScanFinding, policy.RuleKindLicenseScanning, policy.RuleKindAnyMergeRequest:
		default:
			report.lines = append(report.lines, fmt.Sprintf("rule %d has unrecognized type %q", i, rule.Kind))
		}
	}

	report.lines = append(report.lines, fmt.Sprintf("ok: %d rules, %d actions, enforcement %s", len(content.Rules), len(content.Actions), content.Enforcement))
	return report, nil
}

func newLintCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lint <file.yaml> [more files...]",
		Short: "Parse policy documents and report defaulted and unknown fields",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			group := utils.ErrGroup[lintReport](4)
			for _, arg := range args {
				group.Go(func() (lintReport, error) {
					return lintPolicyFile(arg)
				})
			}

			reports, err := group.WaitAndCollect()
			if err != nil {
				return err
			}
			sort.Slice(reports, func(i, j int) bool {
				return reports[i].path < reports[j].path
			})

			for _, report := range reports {
				for _, line := range report.lines {
					fmt.Printf("%s: %s\n", report.path, line)
				}
			}
			return nil
		},
	}
}

func newShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <file.yaml>",
		Short: "Print the typed view of a policy document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, _, err := loadPolicyFile(args[0])
			if err != nil {
				return err
			}

			view := map[string]any{
				"enforcement": string(content.Enforcement),
				"failOpen":    content.Fallback.FailOpen(),
				"failClosed":  content.Fallback.FailClosed(),
				"bypassEmpty": content.BypassSettings.Empty(),
				"rules":       len(content.Rules),
				"actions":     len(content.Actions),
			}
			if window := content.Tuning.SecurityReportTimeWindow; window != nil {
				view["securityReportTimeWindow"] = *window
			}

			out, err := yaml.Marshal(view)
			if err != nil {
				return err
			}
			fmt.Print(string(out))
			return nil
		},
	}
}

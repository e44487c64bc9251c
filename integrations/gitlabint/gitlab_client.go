// Copyright (C) 2024 Tim Bastin, l3montree GmbH
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

// Package gitlabint talks to the upstream GitLab instance. The only surface
// this service needs is maintaining the violation note on a merge request.
package gitlabint

import (
	"context"
	"os"

	"github.com/mergeguard/mergeguard/shared"
	"github.com/pkg/errors"
	gitlab "gitlab.com/gitlab-org/api/client-go"
)

var _ shared.MergeRequestNoteClient = &gitlabNoteClient{}

type gitlabNoteClient struct {
	client *gitlab.Client
}

// NewGitlabNoteClient builds a client from the GITLAB_TOKEN and
// GITLAB_BASE_URL environment variables.
func NewGitlabNoteClient() (*gitlabNoteClient, error) {
	token := os.Getenv("GITLAB_TOKEN")
	if token == "" {
		return nil, errors.New("GITLAB_TOKEN is not set")
	}

	opts := []gitlab.ClientOptionFunc{}
	if baseURL := os.Getenv("GITLAB_BASE_URL"); baseURL != "" {
		opts = append(opts, gitlab.WithBaseURL(baseURL))
	}

	client, err := gitlab.NewClient(token, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "could not create gitlab client")
	}
	return &gitlabNoteClient{client: client}, nil
}

// UpsertMergeRequestNote creates the violation note on first use and updates
// it in place afterwards. Returns the note id the caller has to persist for
// the next refresh.
func (g *gitlabNoteClient) UpsertMergeRequestNote(ctx context.Context, projectID int64, mergeRequestIID int64, noteID *int64, body string) (int64, error) {
	if noteID != nil {
		note, _, err := g.client.Notes.UpdateMergeRequestNote(int(projectID), mergeRequestIID, *noteID, &gitlab.UpdateMergeRequestNoteOptions{
			Body: gitlab.Ptr(body),
		}, gitlab.WithContext(ctx))
		if err != nil {
			return 0, errors.Wrap(err, "could not update merge request note")
		}
		return int64(note.ID), nil
	}

	note, _, err := g.client.Notes.CreateMergeRequestNote(int(projectID), mergeRequestIID, &gitlab.CreateMergeRequestNoteOptions{
		Body: gitlab.Ptr(body),
	}, gitlab.WithContext(ctx))
	if err != nil {
		return 0, errors.Wrap(err, "could not create merge request note")
	}
	return int64(note.ID), nil
}

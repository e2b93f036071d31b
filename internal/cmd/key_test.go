package cmd

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/meilisearch/meilisearch-go"
	"gotest.tools/v3/assert"
)

func TestKeyCmd_Validation(t *testing.T) {
	type testCase struct {
		name         string
		args         []string
		expectedErr  string
		expectedCode int
	}

	run := func(t *testing.T, tc testCase) {
		engine := &fakeEngine{}
		ctx, _ := PatchCLI(context.Background(), engine, fakePrompter{})

		err := Run(ctx, append([]string{"key"}, tc.args...)...)
		assert.ErrorContains(t, err, tc.expectedErr)
		assert.Equal(t, ExitCode(err), tc.expectedCode)
		// validation failures must not reach the engine
		assert.Equal(t, len(engine.calls), 0)
	}

	testCases := []testCase{
		{
			name:         "no key and no action",
			args:         []string{},
			expectedErr:  "No action specified",
			expectedCode: 2,
		},
		{
			name:         "conflicting actions",
			args:         []string{"--create", "--delete", "some-key"},
			expectedErr:  "mutually exclusive",
			expectedCode: 2,
		},
		{
			name:         "update without key",
			args:         []string{"--update"},
			expectedErr:  "key reference is required",
			expectedCode: 3,
		},
		{
			name:         "delete without key",
			args:         []string{"--delete"},
			expectedErr:  "key reference is required",
			expectedCode: 3,
		},
		{
			name:         "invalid expiry",
			args:         []string{"--create", "--expires", "tomorrow", "--non-interactive"},
			expectedErr:  `Invalid expiry "tomorrow"`,
			expectedCode: 2,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			run(t, tc)
		})
	}
}

func TestKeyCmd_Create(t *testing.T) {
	t.Run("all flags", func(t *testing.T) {
		engine := &fakeEngine{responseUID: "6062abda-a5aa-4414-ac91-ecd7944c0f8d"}
		ctx, bufs := PatchCLI(context.Background(), engine, fakePrompter{})

		err := Run(ctx, "key", "--create",
			"--actions=search,version",
			"--indexes=*",
			"--name=backend",
			"--description=search-only key",
			"--uid=my-uid",
			"--non-interactive")
		assert.NilError(t, err)

		assert.DeepEqual(t, engine.createRequest.Actions, []string{"search", "version"})
		assert.DeepEqual(t, engine.createRequest.Indexes, []string{"*"})
		assert.Equal(t, engine.createRequest.Name, "backend")
		assert.Equal(t, engine.createRequest.Description, "search-only key")
		assert.Equal(t, engine.createRequest.UID, "my-uid")
		assert.Assert(t, engine.createRequest.ExpiresAt.IsZero())

		assert.Assert(t, strings.Contains(bufs.Stdout.String(), "API key creation succeeded"))
		assert.Assert(t, strings.Contains(bufs.Stdout.String(), "generated-secret-key"))
	})

	t.Run("defaults", func(t *testing.T) {
		engine := &fakeEngine{responseUID: "some-uid"}
		ctx, _ := PatchCLI(context.Background(), engine, fakePrompter{})

		err := Run(ctx, "key", "--create", "--non-interactive")
		assert.NilError(t, err)

		assert.DeepEqual(t, engine.createRequest.Actions, []string{"*"})
		assert.DeepEqual(t, engine.createRequest.Indexes, []string{"*"})
		assert.Equal(t, engine.createRequest.Name, "")
		assert.Assert(t, engine.createRequest.ExpiresAt.IsZero())
	})

	t.Run("relative expiry resolves against now", func(t *testing.T) {
		engine := &fakeEngine{responseUID: "some-uid"}
		ctx, _ := PatchCLI(context.Background(), engine, fakePrompter{})

		before := time.Now()
		err := Run(ctx, "key", "--create", "--expires", "1 hour", "--non-interactive")
		assert.NilError(t, err)
		after := time.Now()

		expiresAt := engine.createRequest.ExpiresAt
		assert.Equal(t, expiresAt.Location(), time.UTC)
		assert.Assert(t, !expiresAt.Before(before.Add(time.Hour).Add(-time.Second)))
		assert.Assert(t, !expiresAt.After(after.Add(time.Hour).Add(time.Second)))
	})

	t.Run("empty UID in response", func(t *testing.T) {
		engine := &fakeEngine{responseUID: ""}
		ctx, bufs := PatchCLI(context.Background(), engine, fakePrompter{})

		err := Run(ctx, "key", "--create", "--non-interactive")
		assert.ErrorContains(t, err, "did not return a valid key")
		assert.Equal(t, ExitCode(err), 4)
		assert.Assert(t, !strings.Contains(bufs.Stdout.String(), "succeeded"))
	})

	t.Run("prompted", func(t *testing.T) {
		engine := &fakeEngine{
			responseUID: "some-uid",
			indexUIDs:   []string{"movies", "books"},
		}
		prompter := fakePrompter{answers: map[string]string{
			"Actions:": "documents.add,documents.get",
			"Indexes:": "movies",
			"Name:":    "ingest",
		}}
		ctx, _ := PatchCLI(context.Background(), engine, prompter)

		err := Run(ctx, "key", "--create", "--non-interactive=false")
		assert.NilError(t, err)

		// index completion candidates are fetched from the engine
		assert.Assert(t, contains(engine.calls, "ListIndexUIDs"))
		assert.DeepEqual(t, engine.createRequest.Actions, []string{"documents.add", "documents.get"})
		assert.DeepEqual(t, engine.createRequest.Indexes, []string{"movies"})
		assert.Equal(t, engine.createRequest.Name, "ingest")
		// description prompt accepted the default
		assert.Equal(t, engine.createRequest.Description, "")
	})
}

func TestKeyCmd_Update(t *testing.T) {
	existing := &meilisearch.Key{
		UID:         "the-uid",
		Name:        "Foo",
		Description: "old description",
		Actions:     []string{"search"},
		Indexes:     []string{"movies"},
	}

	t.Run("stored values win when no flag is given", func(t *testing.T) {
		engine := &fakeEngine{existing: existing, responseUID: "the-uid"}
		ctx, bufs := PatchCLI(context.Background(), engine, fakePrompter{})

		err := Run(ctx, "key", "--update", "the-uid", "--non-interactive")
		assert.NilError(t, err)

		assert.Equal(t, engine.updatedID, "the-uid")
		assert.Equal(t, engine.updateRequest.Name, "Foo")
		assert.Equal(t, engine.updateRequest.Description, "old description")
		assert.DeepEqual(t, engine.updateRequest.Actions, []string{"search"})
		assert.DeepEqual(t, engine.updateRequest.Indexes, []string{"movies"})
		assert.Assert(t, strings.Contains(bufs.Stdout.String(), "API key modification succeeded"))
	})

	t.Run("flags win over stored values", func(t *testing.T) {
		engine := &fakeEngine{existing: existing, responseUID: "the-uid"}
		ctx, _ := PatchCLI(context.Background(), engine, fakePrompter{})

		err := Run(ctx, "key", "--update", "the-uid",
			"--name=Bar",
			"--actions=search,documents.get",
			"--non-interactive")
		assert.NilError(t, err)

		assert.Equal(t, engine.updateRequest.Name, "Bar")
		assert.Equal(t, engine.updateRequest.Description, "old description")
		assert.DeepEqual(t, engine.updateRequest.Actions, []string{"search", "documents.get"})
	})

	t.Run("empty UID in response", func(t *testing.T) {
		engine := &fakeEngine{existing: existing, responseUID: ""}
		ctx, bufs := PatchCLI(context.Background(), engine, fakePrompter{})

		err := Run(ctx, "key", "--update", "the-uid", "--non-interactive")
		assert.ErrorContains(t, err, "did not return a valid key")
		assert.Equal(t, ExitCode(err), 4)
		assert.Assert(t, !strings.Contains(bufs.Stdout.String(), "succeeded"))
	})
}

func TestKeyCmd_Delete(t *testing.T) {
	engine := &fakeEngine{}
	ctx, bufs := PatchCLI(context.Background(), engine, fakePrompter{})

	err := Run(ctx, "key", "--delete", "the-uid")
	assert.NilError(t, err)

	assert.Equal(t, engine.deletedID, "the-uid")
	// deletion collects nothing and performs a single call
	assert.DeepEqual(t, engine.calls, []string{"DeleteKey"})
	assert.Assert(t, strings.Contains(bufs.Stdout.String(), "API key deletion succeeded"))
}

func TestSplitList(t *testing.T) {
	assert.DeepEqual(t, splitList("search,version"), []string{"search", "version"})
	assert.DeepEqual(t, splitList(" search , version "), []string{"search", "version"})
	assert.DeepEqual(t, splitList("*"), []string{"*"})
	assert.DeepEqual(t, splitList("search,,"), []string{"search"})
}

func contains(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

package cmd

import (
	"errors"

	"github.com/meilisearch/meilisearch-go"
)

// fakeEngine records every call so tests can assert on the request payloads
// without a server.
type fakeEngine struct {
	existing    *meilisearch.Key // returned by GetKey
	stored      []meilisearch.Key
	indexUIDs   []string
	responseUID string // UID stamped on create/update responses
	version     string

	calls         []string
	createRequest *meilisearch.Key
	updateRequest *meilisearch.Key
	updatedID     string
	deletedID     string
}

func (f *fakeEngine) CreateKey(request *meilisearch.Key) (*meilisearch.Key, error) {
	f.calls = append(f.calls, "CreateKey")
	f.createRequest = request

	resp := *request
	resp.UID = f.responseUID
	resp.Key = "generated-secret-key"
	return &resp, nil
}

func (f *fakeEngine) UpdateKey(keyOrUID string, request *meilisearch.Key) (*meilisearch.Key, error) {
	f.calls = append(f.calls, "UpdateKey")
	f.updatedID = keyOrUID
	f.updateRequest = request

	resp := *request
	resp.UID = f.responseUID
	return &resp, nil
}

func (f *fakeEngine) DeleteKey(keyOrUID string) (bool, error) {
	f.calls = append(f.calls, "DeleteKey")
	f.deletedID = keyOrUID
	return true, nil
}

func (f *fakeEngine) GetKey(keyOrUID string) (*meilisearch.Key, error) {
	f.calls = append(f.calls, "GetKey")
	if f.existing == nil {
		return nil, errors.New("key not found")
	}
	return f.existing, nil
}

func (f *fakeEngine) GetKeys(param *meilisearch.KeysQuery) (*meilisearch.KeysResults, error) {
	f.calls = append(f.calls, "GetKeys")
	return &meilisearch.KeysResults{
		Results: f.stored,
		Limit:   param.Limit,
		Total:   int64(len(f.stored)),
	}, nil
}

func (f *fakeEngine) ListIndexUIDs() ([]string, error) {
	f.calls = append(f.calls, "ListIndexUIDs")
	return f.indexUIDs, nil
}

func (f *fakeEngine) Health() error {
	f.calls = append(f.calls, "Health")
	return nil
}

func (f *fakeEngine) Version() (string, error) {
	f.calls = append(f.calls, "Version")
	if f.version == "" {
		return "", errors.New("not connected")
	}
	return f.version, nil
}

// fakePrompter answers prompts from a script keyed by message. Prompts not
// in the script accept the default.
type fakePrompter struct {
	answers map[string]string
}

func (f fakePrompter) Input(message, def string) (string, error) {
	if answer, ok := f.answers[message]; ok {
		return answer, nil
	}
	return def, nil
}

func (f fakePrompter) Suggest(message, def string, options []string) (string, error) {
	return f.Input(message, def)
}

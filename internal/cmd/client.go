package cmd

import (
	"github.com/meilisearch/meilisearch-go"
	"github.com/spf13/pflag"
)

// listIndexesLimit caps the index listing used for prompt completion.
const listIndexesLimit = 200

// Engine is the slice of the Meilisearch API this tool drives. Commands
// depend on the interface, never on the SDK client directly, so tests can
// substitute a fake.
type Engine interface {
	CreateKey(request *meilisearch.Key) (*meilisearch.Key, error)
	UpdateKey(keyOrUID string, request *meilisearch.Key) (*meilisearch.Key, error)
	DeleteKey(keyOrUID string) (bool, error)
	GetKey(keyOrUID string) (*meilisearch.Key, error)
	GetKeys(param *meilisearch.KeysQuery) (*meilisearch.KeysResults, error)
	ListIndexUIDs() ([]string, error)
	Health() error
	Version() (string, error)
}

// apiEngine returns the engine to use for remote calls, building one from
// the client configuration unless a test injected a substitute.
func (c *CLI) apiEngine(flags *pflag.FlagSet) (Engine, error) {
	if c.engine != nil {
		return c.engine, nil
	}

	config, err := loadClientConfig(flags)
	if err != nil {
		return nil, err
	}
	return newEngine(config)
}

type meiliEngine struct {
	client *meilisearch.Client
}

func newEngine(config clientConfig) (Engine, error) {
	if config.Host == "" {
		return nil, Error{Message: "Missing search engine host, set --host or MEILIKEY_HOST"}
	}

	client := meilisearch.NewClient(meilisearch.ClientConfig{
		Host:    config.Host,
		APIKey:  config.APIKey,
		Timeout: config.Timeout,
	})
	return &meiliEngine{client: client}, nil
}

func (e *meiliEngine) CreateKey(request *meilisearch.Key) (*meilisearch.Key, error) {
	return e.client.CreateKey(request)
}

func (e *meiliEngine) UpdateKey(keyOrUID string, request *meilisearch.Key) (*meilisearch.Key, error) {
	return e.client.UpdateKey(keyOrUID, request)
}

func (e *meiliEngine) DeleteKey(keyOrUID string) (bool, error) {
	return e.client.DeleteKey(keyOrUID)
}

func (e *meiliEngine) GetKey(keyOrUID string) (*meilisearch.Key, error) {
	return e.client.GetKey(keyOrUID)
}

func (e *meiliEngine) GetKeys(param *meilisearch.KeysQuery) (*meilisearch.KeysResults, error) {
	return e.client.GetKeys(param)
}

func (e *meiliEngine) ListIndexUIDs() ([]string, error) {
	res, err := e.client.GetIndexes(&meilisearch.IndexesQuery{Limit: listIndexesLimit})
	if err != nil {
		return nil, err
	}

	uids := make([]string, 0, len(res.Results))
	for i := range res.Results {
		uids = append(uids, res.Results[i].UID)
	}
	return uids, nil
}

func (e *meiliEngine) Health() error {
	_, err := e.client.Health()
	return err
}

func (e *meiliEngine) Version() (string, error) {
	res, err := e.client.GetVersion()
	if err != nil {
		return "", err
	}
	return res.PkgVersion, nil
}

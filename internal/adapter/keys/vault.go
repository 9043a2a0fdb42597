package keys

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"health-record-vault/config"

	"github.com/hashicorp/vault/api"
)

// NewVaultClient creates a token-authenticated Vault client.
func NewVaultClient(cfg config.VaultConfig) (*api.Client, error) {
	if cfg.Address == "" {
		return nil, errors.New("vault address is required")
	}
	vcfg := api.DefaultConfig()
	vcfg.Address = cfg.Address

	client, err := api.NewClient(vcfg)
	if err != nil {
		return nil, fmt.Errorf("creating vault client: %w", err)
	}
	if cfg.Token != "" {
		client.SetToken(cfg.Token)
	}
	return client, nil
}

// VaultProvider reads a hex-encoded key from a KV v2 secret. The key is
// fetched on first use and cached for the life of the process.
type VaultProvider struct {
	client *api.Client
	path   string
	field  string

	mu  sync.Mutex
	key []byte
}

// NewVaultProvider reads field of the KV v2 secret at path
// (for example "secret/data/health-record-vault").
func NewVaultProvider(client *api.Client, path, field string) *VaultProvider {
	return &VaultProvider{client: client, path: path, field: field}
}

// Key returns the record key, reading Vault on the first call. A failed
// read is not cached.
func (p *VaultProvider) Key(ctx context.Context) ([]byte, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.key == nil {
		key, err := p.read(ctx)
		if err != nil {
			return nil, err
		}
		p.key = key
	}
	return append([]byte(nil), p.key...), nil
}

func (p *VaultProvider) read(ctx context.Context) ([]byte, error) {
	secret, err := p.client.Logical().ReadWithContext(ctx, p.path)
	if err != nil {
		return nil, fmt.Errorf("reading vault secret %s: %w", p.path, err)
	}
	if secret == nil || secret.Data == nil {
		return nil, fmt.Errorf("vault secret %s not found", p.path)
	}

	// KV v2 wraps the payload in a "data" key.
	data, ok := secret.Data["data"].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("vault secret %s is not a KV v2 secret", p.path)
	}
	value, ok := data[p.field].(string)
	if !ok {
		return nil, fmt.Errorf("vault secret %s has no field %q", p.path, p.field)
	}
	return decodeHexKey(value)
}

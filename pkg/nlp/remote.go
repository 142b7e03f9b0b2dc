package nlp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// RemoteProvider calls a calamanCy tagger sidecar over HTTP. The sidecar
// loads the pretrained pipeline (tokenizer, tagger, dependency parser, NER)
// once and exposes it as POST {endpoint}/analyze.
type RemoteProvider struct {
	endpoint string
	model    string
	client   *http.Client
}

// NewRemoteProvider creates a provider for the tagger service at endpoint.
func NewRemoteProvider(endpoint, model string, timeout time.Duration) *RemoteProvider {
	return &RemoteProvider{
		endpoint: endpoint,
		model:    model,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Name identifies the provider in responses and logs.
func (p *RemoteProvider) Name() string {
	return "calamancy"
}

// HasSyntax reports that the model pipeline produces full syntax output.
func (p *RemoteProvider) HasSyntax() bool {
	return true
}

type analyzeRequest struct {
	Sentence string `json:"sentence"`
	Model    string `json:"model,omitempty"`
}

// analyzeResponse mirrors Analysis on the wire, except that head is a
// pointer: a sidecar that omits it must not produce Head=0, which would
// make every token a dependent of the first one.
type analyzeResponse struct {
	Tokens []struct {
		Index int               `json:"index"`
		Text  string            `json:"text"`
		Lemma string            `json:"lemma"`
		POS   string            `json:"pos"`
		Tag   string            `json:"tag"`
		Dep   string            `json:"dep"`
		Head  *int              `json:"head"`
		Morph map[string]string `json:"morph"`
	} `json:"tokens"`
	Entities []Entity `json:"entities"`
}

func (r *analyzeResponse) toAnalysis() *Analysis {
	analysis := &Analysis{Entities: r.Entities}
	for _, t := range r.Tokens {
		head := -1
		if t.Head != nil {
			head = *t.Head
		}
		analysis.Tokens = append(analysis.Tokens, Token{
			Index: t.Index,
			Text:  t.Text,
			Lemma: t.Lemma,
			POS:   t.POS,
			Tag:   t.Tag,
			Dep:   t.Dep,
			Head:  head,
			Morph: t.Morph,
		})
	}
	return analysis
}

// Analyze sends sentence to the tagger service and decodes the token stream.
func (p *RemoteProvider) Analyze(ctx context.Context, sentence string) (*Analysis, error) {
	body, err := json.Marshal(analyzeRequest{Sentence: sentence, Model: p.model})
	if err != nil {
		return nil, fmt.Errorf("failed to encode analyze request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint+"/analyze", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create analyze request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tagger request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("tagger returned status %d: %s", resp.StatusCode, string(msg))
	}

	var decoded analyzeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode tagger response: %w", err)
	}
	return decoded.toAnalysis(), nil
}

// Ping checks whether the tagger service is reachable and healthy.
func (p *RemoteProvider) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.endpoint+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("tagger health check returned status %d", resp.StatusCode)
	}
	return nil
}

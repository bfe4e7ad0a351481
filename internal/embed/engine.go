package embed

import "context"

// Embedder produces one fixed-length vector per input text. Dimensionality
// is model-defined and constant within one run.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// RegisteringEmbedder is an Embedder whose model can be registered with the
// backing engine on demand.
type RegisteringEmbedder interface {
	Embedder
	Pull(ctx context.Context) error
}

// EmbedWithRegister embeds texts, registering the model and retrying exactly
// once if the first attempt fails. A second failure is surfaced to the
// caller.
func EmbedWithRegister(ctx context.Context, e RegisteringEmbedder, texts []string) ([][]float32, error) {
	vecs, err := e.Embed(ctx, texts)
	if err == nil {
		return vecs, nil
	}
	if pullErr := e.Pull(ctx); pullErr != nil {
		return nil, pullErr
	}
	return e.Embed(ctx, texts)
}

package node

import (
	"context"

	"github.com/neco-fun/neco-api-go/api/shared"
	"github.com/neco-fun/neco-api-go/chain"
)

// SetDialHandler -
func (ar *ApiRunner) SetDialHandler(handler chain.DialHandler) {
	ar.dialHandler = handler
}

// CreateComponents -
func (ar *ApiRunner) CreateComponents(ctx context.Context) (shared.FacadeHandler, func(), error) {
	components, err := ar.createComponents(ctx)
	if err != nil {
		return nil, nil, err
	}

	return components.facade, func() {
		closeAllComponents(components)
	}, nil
}

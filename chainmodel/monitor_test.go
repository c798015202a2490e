package chainmodel_test

import (
	"testing"

	"github.com/chainwatch/chainwatch/chainmodel"
	"github.com/chainwatch/chainwatch/chainmodel/chainmodeltest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonitorValidate(t *testing.T) {
	repo := chainmodel.StaticRepository{
		Networks: map[string]chainmodel.Network{"ethereum_mainnet": {}},
		Triggers: map[string]chainmodel.Trigger{"slack_ops": {}},
	}

	m := chainmodeltest.NewMonitor("usdc_transfers").
		Networks("ethereum_mainnet").
		Event("Transfer(address,address,uint256)", "").
		Triggers("slack_ops").
		Build()
	require.NoError(t, m.Validate(repo, repo))

	m2 := m
	m2.Networks = []string{"unknown_net"}
	assert.ErrorIs(t, m2.Validate(repo, repo), chainmodel.ErrUnknownNetwork)

	m3 := m
	m3.Triggers = []string{"unknown_trigger"}
	assert.ErrorIs(t, m3.Validate(repo, repo), chainmodel.ErrUnknownTrigger)

	m4 := chainmodeltest.NewMonitor("bad_sig").
		Networks("ethereum_mainnet").
		Event("Transfer", "").
		Build()
	assert.ErrorIs(t, m4.Validate(repo, repo), chainmodel.ErrMalformedSig)

	m5 := chainmodeltest.NewMonitor("empty_name").Build()
	m5.Name = ""
	assert.ErrorIs(t, m5.Validate(repo, repo), chainmodel.ErrEmptyMonitorName)
}

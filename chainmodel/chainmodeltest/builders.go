// Package chainmodeltest provides fluent builders for chainmodel fixtures,
// in the same table-driven test fixture style used across this module.
package chainmodeltest

import "github.com/chainwatch/chainwatch/chainmodel"

type NetworkBuilder struct {
	n chainmodel.Network
}

func NewNetwork(slug string) *NetworkBuilder {
	return &NetworkBuilder{n: chainmodel.Network{
		Slug:               slug,
		Name:               slug,
		ChainKind:          chainmodel.EVM,
		RPCEndpoints:       []chainmodel.RPCEndpoint{{URL: "https://rpc.example/" + slug, Weight: 1}},
		BlockTimeMs:        2000,
		ConfirmationBlocks: 1,
		CronSchedule:       "*/10 * * * * *",
	}}
}

func (b *NetworkBuilder) ChainKind(k chainmodel.ChainKind) *NetworkBuilder {
	b.n.ChainKind = k
	return b
}

func (b *NetworkBuilder) ConfirmationBlocks(n uint64) *NetworkBuilder {
	b.n.ConfirmationBlocks = n
	return b
}

func (b *NetworkBuilder) BlockTimeMs(ms uint64) *NetworkBuilder {
	b.n.BlockTimeMs = ms
	return b
}

func (b *NetworkBuilder) MaxPastBlocks(n uint64) *NetworkBuilder {
	b.n.MaxPastBlocks = &n
	return b
}

func (b *NetworkBuilder) StoreBlocks(v bool) *NetworkBuilder {
	b.n.StoreBlocks = v
	return b
}

func (b *NetworkBuilder) Build() chainmodel.Network {
	return b.n
}

type MonitorBuilder struct {
	m chainmodel.Monitor
}

func NewMonitor(name string) *MonitorBuilder {
	return &MonitorBuilder{m: chainmodel.Monitor{Name: name}}
}

func (b *MonitorBuilder) Networks(slugs ...string) *MonitorBuilder {
	b.m.Networks = slugs
	return b
}

func (b *MonitorBuilder) Paused(v bool) *MonitorBuilder {
	b.m.Paused = v
	return b
}

func (b *MonitorBuilder) Address(addr string, abi string) *MonitorBuilder {
	a := chainmodel.AddressWithSpec{Address: addr}
	if abi != "" {
		a.ABI = []byte(abi)
	}
	b.m.Addresses = append(b.m.Addresses, a)
	return b
}

func (b *MonitorBuilder) Event(signature string, expression string) *MonitorBuilder {
	c := chainmodel.EventCondition{Signature: signature}
	if expression != "" {
		c.Expression = &expression
	}
	b.m.MatchConditions.Events = append(b.m.MatchConditions.Events, c)
	return b
}

func (b *MonitorBuilder) Function(signature string, expression string) *MonitorBuilder {
	c := chainmodel.FunctionCondition{Signature: signature}
	if expression != "" {
		c.Expression = &expression
	}
	b.m.MatchConditions.Functions = append(b.m.MatchConditions.Functions, c)
	return b
}

func (b *MonitorBuilder) Transaction(status chainmodel.TransactionStatus, expression string) *MonitorBuilder {
	c := chainmodel.TransactionCondition{Status: status}
	if expression != "" {
		c.Expression = &expression
	}
	b.m.MatchConditions.Transactions = append(b.m.MatchConditions.Transactions, c)
	return b
}

func (b *MonitorBuilder) Triggers(names ...string) *MonitorBuilder {
	b.m.Triggers = names
	return b
}

func (b *MonitorBuilder) Build() chainmodel.Monitor {
	return b.m
}

type TriggerBuilder struct {
	t chainmodel.Trigger
}

func NewTrigger(name string, kind chainmodel.TriggerType) *TriggerBuilder {
	return &TriggerBuilder{t: chainmodel.Trigger{Name: name, Type: kind, Config: map[string]string{}}}
}

func (b *TriggerBuilder) Set(key, value string) *TriggerBuilder {
	b.t.Config[key] = value
	return b
}

func (b *TriggerBuilder) Build() chainmodel.Trigger {
	return b.t
}

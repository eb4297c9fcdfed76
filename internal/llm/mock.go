// ABOUTME: Rule-based offline mock generator
// ABOUTME: Deterministic canned answers keyed on prompt substrings, never fails
package llm

import "strings"

// mockRule maps prompt substrings to a canned answer. Every listed
// substring must appear (lower-cased) for the rule to fire.
type mockRule struct {
	substrings []string
	answer     string
}

var mockRules = []mockRule{
	{
		substrings: []string{"what is bitcoin"},
		answer: "Bitcoin (BTC) is a decentralized digital currency introduced in 2009. " +
			"It runs on a proof-of-work blockchain and is used as digital store of value.",
	},
	{
		substrings: []string{"what is btc"},
		answer: "Bitcoin (BTC) is a decentralized digital currency introduced in 2009. " +
			"It runs on a proof-of-work blockchain and is used as digital store of value.",
	},
	{
		substrings: []string{"price of bitcoin"},
		answer:     "Mocked price: BTC = $43,200 (demo). Replace with live API for real prices.",
	},
	{
		substrings: []string{"btc price"},
		answer:     "Mocked price: BTC = $43,200 (demo). Replace with live API for real prices.",
	},
	{
		substrings: []string{"what is ethereum"},
		answer:     "Ethereum (ETH) is a programmable blockchain supporting smart contracts and dapps.",
	},
	{
		substrings: []string{"eth"},
		answer:     "Ethereum (ETH) is a programmable blockchain supporting smart contracts and dapps.",
	},
	{
		substrings: []string{"how to buy", "bitcoin"},
		answer: "Common steps: (1) choose an exchange, (2) create and verify account (KYC), " +
			"(3) deposit funds, (4) place a buy order, (5) move to a secure wallet.",
	},
}

// MockAnswerFallback is returned when no rule matches.
const MockAnswerFallback = "Sorry, I don't have a prepared answer for that in the offline demo."

// MockGenerate is the always-available offline generation backend. It
// matches lower-cased substrings of the prompt against canned rules and
// is total: every input yields an answer.
func MockGenerate(prompt string) string {
	q := strings.ToLower(prompt)
	for _, rule := range mockRules {
		matched := true
		for _, sub := range rule.substrings {
			if !strings.Contains(q, sub) {
				matched = false
				break
			}
		}
		if matched {
			return rule.answer
		}
	}
	return MockAnswerFallback
}

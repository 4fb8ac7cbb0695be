/*
coins.go - Currency arithmetic for the simulation

PURPOSE:
  Coins is the single real-valued unit in the engine. Balances move by
  fractions of a coin every passive-income tick (rate/60 per second), so
  float64 drift would compound over a long session. decimal.Decimal keeps
  every credit and debit exact.

DESIGN PRINCIPLES:
  1. Immutability: all operations return a new Coins value
  2. Precision: decimal.Decimal, never float64, for stored balances
  3. Floors: balances are clamped at zero by callers via FloorZero, never
     allowed to observe a negative value
*/
package bakery

import "github.com/shopspring/decimal"

// Coins is an exact coin amount. The zero value is zero coins.
type Coins struct {
	Value decimal.Decimal
}

func NewCoins(v float64) Coins { return Coins{Value: decimal.NewFromFloat(v)} }
func CoinsFromInt(n int) Coins { return Coins{Value: decimal.NewFromInt(int64(n))} }
func ZeroCoins() Coins { return Coins{Value: decimal.Zero} }

func (c Coins) Add(o Coins) Coins { return Coins{Value: c.Value.Add(o.Value)} }
func (c Coins) Sub(o Coins) Coins { return Coins{Value: c.Value.Sub(o.Value)} }
func (c Coins) AddInt(n int) Coins { return c.Add(CoinsFromInt(n)) }
func (c Coins) SubInt(n int) Coins { return c.Sub(CoinsFromInt(n)) }
func (c Coins) MulInt(n int) Coins { return Coins{Value: c.Value.Mul(decimal.NewFromInt(int64(n)))} }
func (c Coins) DivInt(n int) Coins { return Coins{Value: c.Value.Div(decimal.NewFromInt(int64(n)))} }

func (c Coins) IsZero() bool     { return c.Value.IsZero() }
func (c Coins) IsNegative() bool { return c.Value.IsNegative() }

func (c Coins) LessThan(o Coins) bool { return c.Value.LessThan(o.Value) }
func (c Coins) LessThanInt(n int) bool {
	return c.Value.LessThan(decimal.NewFromInt(int64(n)))
}
func (c Coins) AtLeastInt(n int) bool {
	return c.Value.GreaterThanOrEqual(decimal.NewFromInt(int64(n)))
}

// FloorZero clamps a balance at zero after a debit.
func (c Coins) FloorZero() Coins {
	if c.Value.IsNegative() {
		return ZeroCoins()
	}
	return c
}

// Floor returns the whole-coin part, as displayed to the player.
func (c Coins) Floor() int { return int(c.Value.Floor().IntPart()) }

// Round returns the amount rounded to the nearest whole coin.
func (c Coins) Round() int { return int(c.Value.Round(0).IntPart()) }

// Float converts for display and serialization only. Never store the result.
func (c Coins) Float() float64 { return c.Value.InexactFloat64() }

func (c Coins) String() string { return c.Value.String() }

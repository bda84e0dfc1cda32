package usecase

import (
	"math/rand"
	"time"
)

const orderIDAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// RandomOrderIDGenerator は "ORD" + base36の英数9桁を発行する。
type RandomOrderIDGenerator struct{}

func NewRandomOrderIDGenerator() *RandomOrderIDGenerator {
	return &RandomOrderIDGenerator{}
}

func (g *RandomOrderIDGenerator) NewOrderID() string {
	b := make([]byte, 9)
	for i := range b {
		b[i] = orderIDAlphabet[rand.Intn(len(orderIDAlphabet))]
	}
	return "ORD" + string(b)
}

type SystemClock struct{}

func (c *SystemClock) Now() time.Time {
	return time.Now().UTC()
}

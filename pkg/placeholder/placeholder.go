// Package placeholder fills a fresh list with throwaway entries.
package placeholder

import (
	"math/rand/v2"

	"tableflip.dev/todos/pkg/entry"
)

var animals = []string{
	"aardvark", "albatross", "alligator", "alpaca", "ant", "anteater", "antelope",
	"armadillo", "badger", "barracuda", "bat", "bear", "beaver", "bee", "bison",
	"boar", "buffalo", "butterfly", "camel", "capybara", "caribou", "cat",
	"caterpillar", "cheetah", "chicken", "chimpanzee", "chinchilla", "cobra",
	"cormorant", "coyote", "crab", "crane", "crocodile", "crow", "deer", "dog",
	"dolphin", "donkey", "dove", "dragonfly", "duck", "eagle", "eel", "elephant",
	"elk", "emu", "falcon", "ferret", "finch", "flamingo", "fox", "frog",
	"gazelle", "gerbil", "giraffe", "gnu", "goat", "goldfish", "goose", "gorilla",
	"grasshopper", "hamster", "hare", "hawk", "hedgehog", "heron", "hippopotamus",
	"hornet", "horse", "hummingbird", "hyena", "ibex", "iguana", "jackal",
	"jaguar", "jellyfish", "kangaroo", "koala", "kookaburra", "lemur", "leopard",
	"lion", "llama", "lobster", "lynx", "magpie", "manatee", "meerkat", "mole",
	"mongoose", "moose", "mosquito", "mouse", "narwhal", "newt", "octopus",
	"okapi", "opossum", "ostrich", "otter", "owl", "ox", "oyster", "panther",
	"parrot", "pelican", "penguin", "pheasant", "pig", "pigeon", "porcupine",
	"quail", "rabbit", "raccoon", "raven", "reindeer", "rhinoceros", "salamander",
	"salmon", "seahorse", "seal", "shark", "sheep", "skunk", "sloth", "snail",
	"snake", "sparrow", "spider", "squid", "squirrel", "starling", "stingray",
	"swan", "tapir", "tiger", "toad", "turkey", "turtle", "viper", "vulture",
	"walrus", "wasp", "weasel", "whale", "wolf", "wombat", "woodpecker", "yak",
	"zebra",
}

// Animal returns a random animal name.
func Animal(r *rand.Rand) string {
	if r == nil {
		return animals[rand.IntN(len(animals))]
	}
	return animals[r.IntN(len(animals))]
}

// Entries returns n New entries named after random animals. A nil r uses the
// global source.
func Entries(n int, r *rand.Rand) []entry.Entry {
	if n <= 0 {
		return []entry.Entry{}
	}
	out := make([]entry.Entry, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, entry.NewEntry(Animal(r)))
	}
	return out
}

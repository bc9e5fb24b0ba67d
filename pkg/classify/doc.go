// Package classify holds the stateless text predicates applied to every utterance
// before it reaches the dialogue engine: the yes/no normalizer and the guard classifiers.
package classify

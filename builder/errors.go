package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrGraphTooSmall indicates a constructor asking for more nodes than the
// graph has.
var ErrGraphTooSmall = errors.New("builder: graph too small for constructor")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor run without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a constructor that could not complete,
// including a nil constructor passed to BuildGraph.
var ErrConstructFailed = errors.New("builder: construction failed")

package sim

// SimulateQuery runs one query of the fixed-query model: it records the
// method's per-query tokens and draws a quality from the method's range.
func SimulateQuery(m Method, acc *Accumulator, src Source) float64 {
	p := m.QueryProfile()
	acc.Accumulate(p.TokensPerQuery)
	return src.Uniform(p.QualityLow, p.QualityHigh)
}

// ChunkTokens is chunks*chunkSize scaled by ratio, truncated toward zero.
func ChunkTokens(chunks, chunkSize int, ratio float64) int {
	return int(float64(chunks*chunkSize) * ratio)
}

// SimulateChunks records and returns the tokens one query passes on under the
// chunk-based model.
func SimulateChunks(m Method, chunks, chunkSize int, acc *Accumulator) int {
	tokens := ChunkTokens(chunks, chunkSize, m.ChunkRatio())
	acc.Accumulate(tokens)
	return tokens
}

// ContextTokens is contextSize scaled by ratio, truncated toward zero.
func ContextTokens(contextSize int, ratio float64) int {
	return int(float64(contextSize) * ratio)
}

// SimulateContext records and returns the effective context tokens of one
// query over a document of contextSize tokens.
func SimulateContext(m Method, contextSize int, acc *Accumulator) int {
	tokens := ContextTokens(contextSize, m.ContextRatio())
	acc.Accumulate(tokens)
	return tokens
}

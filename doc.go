// SPDX-License-Identifier: MIT
// Package chancap estimates the capacity of discrete memoryless channels over
// binary codewords with the Blahut–Arimoto Algorithm.
//
// 🚀 What is in chancap?
//
//	A pure-Go, deterministic numeric core:
//		• Transition probability providers: BSC, deletion channel, explicit tables
//		• Row/column expansion of a provider
//		• Pair-averaged log marginals (output denominators)
//		• One BAA step with log-sum-exp stabilization
//		• Mutual information: reference (table) and table-free variants
//		• Symmetry reduction of codeword sets
//		• Range partitioning and a bounded worker pool for the same stages
//
// Under the hood, everything is organized under two subpackages:
//
//	channel/ — Provider contract, bit words, BSC, deletion channel, gonum-backed tables
//	baa/     — Row/Col, LogDenominators, LogAlphas, Step, Rate, RateEfficient,
//	           Symmetries, Partition, Executor
//
// Stopping criteria, codeword generation and any I/O belong to the caller:
// the core performs exactly one iteration per Step call.
//
//	go get github.com/katalvlaran/chancap
package chancap

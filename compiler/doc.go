/*
Package compiler loads pipeline descriptions and assembles them.

Description (yaml) ->
	load, digest shader modules ->
Build Info (api) ->
	assemble ->
		format table, resource flattener
Generator Config (ir)

*/
package compiler

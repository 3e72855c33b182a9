/*
Package hubgen provides CLI tooling to generate UCSC track hubs.

The primary goal of hubgen is to turn a curated directory tree of genome
track files into the trackDb configuration and the link farm a track hub
host serves, deterministically enough to be re-run whenever new data lands.
*/
package hubgen

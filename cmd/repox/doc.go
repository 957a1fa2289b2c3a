/*
repox manages a REPOX metadata aggregation service instance from the
command line.

It wraps the instance's REST management API: listing the
aggregator/provider/dataset tree, inspecting datasets, driving harvests
and keeping an optional local SQLite snapshot of the tree.

# Usage

	repox <command> [options]

# Commands

	aggregators  List aggregators
	providers    List providers of an aggregator
	datasets     List datasets of a provider
	dataset      Show details of a dataset
	harvest      Start, inspect, schedule or cancel harvests
	stats        Show instance statistics
	sync         Snapshot the remote tree into the local inventory
	inventory    Inspect the local inventory snapshot

# Configuration

Connection settings come from the environment or an optional repox
config file in ~/.config/repox or the working directory:

	REPOX_URL        Base URL of the instance (default: http://localhost:8080)
	REPOX_USERNAME   Basic auth username
	REPOX_PASSWORD   Basic auth password
	REPOX_LOG_LEVEL  Log level (default: info)
	REPOX_INVENTORY  Inventory database (default: ~/.cache/repox/inventory.db)

# Browsing the tree

Listings print bare identifiers by default; -verbose adds the metadata:

	repox aggregators
	repox providers -aggregator dltn -verbose
	repox datasets -provider UTKr0
	repox dataset -count -date nr

# Harvests

	repox harvest start nr              # full harvest
	repox harvest start -sample nr      # sample harvest
	repox harvest status nr
	repox harvest log nr
	repox harvest schedules nr
	repox harvest cancel nr

# Inventory

sync walks the remote tree and stores it in a single SQLite file for
offline inspection; -counts also fetches per-dataset record counts:

	repox sync -counts
	repox inventory
	repox inventory -provider UTKr0
*/
package main

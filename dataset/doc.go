// SPDX-License-Identifier: MIT

// Package dataset reads and writes forcelayout datasets as YAML or JSON
// files.
//
// A file holds two lists, nodes and links, whose records mirror
// core.NodeSpec and core.LinkSpec with nullable fields:
//
//	nodes:
//	  - name: rule0
//	    cluster: 1
//	    x: 120        # x and y come as a pair
//	    y: 80
//	    fx: 120       # fx and fy pin the node
//	    fy: 80
//	links:
//	  - source: rule0
//	    target: rule1
//	    value: -2
//	    kind: hit-test   # "visible" when omitted
//
// FromFrame turns a simulation frame back into a file, so a finished layout
// can be fed to another run and keep its positions.
package dataset

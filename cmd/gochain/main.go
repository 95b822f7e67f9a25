// Package main provides the entry point for the gochain CLI.
//
// gochain counts the words of text files. Every file goes through its own pipeline:
//
//	gochain count notes.txt book.txt --top 20 --jobs 2
//
// See --help for all available options.
package main

func main() {
	Execute()
}

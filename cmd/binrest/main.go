// Command binrest is a thin command line over the binance client.
//
// Settings come from flags, BINREST_* environment variables or a .env
// file in the working directory, in that order of precedence.
package main

func main() {
	Execute()
}

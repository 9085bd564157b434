/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/SvenDH/ward/cmd"

func main() {
	cmd.Execute()
}

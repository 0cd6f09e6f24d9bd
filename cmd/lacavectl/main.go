// lacavectl 是 La Cave API 的管理命令列工具
package main

import (
	"context"
	"fmt"
	"os"
)

var exitFunc = os.Exit

func main() {
	cmd := newRootCmd()
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), errorStyle.Render("錯誤: "+err.Error()))
		exitFunc(1)
	}
}

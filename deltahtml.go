// Package deltahtml 将富文本编辑器的 delta 操作序列转换为 HTML 片段
//
// 每个操作插入一段文本或一个嵌入对象（图片、附件、提及），并可携带格式属性。
// 行级属性（list、indent、align、header、code-block）位于包含换行符的操作上，
// 行内属性（bold、italic、link、color 等）作用于文本片段。
//
// 核心功能：
//   - 行内格式按属性名字典序嵌套，第一个属性位于最内层
//   - 有序/无序列表与代码块的多级缩进
//   - 图片、视频附件与提及的固定标记
//
// 主要 API：
//   - Convert(): 转换已解码的操作序列
//   - ConvertJSON(): 解析 JSON 后转换
//   - Validate(): 检查输出中的标签是否配对
//   - PlainText(): 生成纯文本预览
//
// 示例：
//
//	html := deltahtml.Convert([]deltahtml.Op{
//	    {Insert: "hello"},
//	    {Insert: "\n", Attributes: map[string]any{"list": "bullet"}},
//	})
//	// <ul><li>hello</li></ul>
package deltahtml

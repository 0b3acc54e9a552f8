package domain

// BlockKind enumerates the element types the document builder understands.
type BlockKind int

const (
	BlockHeading BlockKind = iota
	BlockParagraph
	BlockTable
	BlockImage
	BlockPageBreak
)

// DocBlock is one element of the ordered block list a report document is
// assembled from. Only the fields matching Kind are set.
type DocBlock struct {
	Kind      BlockKind
	Text      string
	Header    []string
	Rows      [][]string
	ImagePath string
}

func Heading(text string) DocBlock   { return DocBlock{Kind: BlockHeading, Text: text} }
func Paragraph(text string) DocBlock { return DocBlock{Kind: BlockParagraph, Text: text} }
func PageBreak() DocBlock            { return DocBlock{Kind: BlockPageBreak} }

func TableBlock(header []string, rows [][]string) DocBlock {
	return DocBlock{Kind: BlockTable, Header: header, Rows: rows}
}

func ImageBlock(path string) DocBlock {
	return DocBlock{Kind: BlockImage, ImagePath: path}
}

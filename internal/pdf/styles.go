package pdf

// resumeStyle is the print stylesheet shared by both rendering engines.
const resumeStyle = `
        body {
            font-family: 'Times New Roman', serif;
            font-size: 11pt;
            line-height: 1.2;
            margin: 0.5in;
            color: #000;
        }

        h1 {
            text-align: center;
            font-size: 16pt;
            font-weight: bold;
            margin: 0 0 5px 0;
            padding: 0;
        }

        /* Contact info styling */
        body > p:first-of-type {
            text-align: center;
            font-size: 10pt;
            margin: 0 0 15px 0;
        }

        h2 {
            font-size: 12pt;
            font-weight: bold;
            text-transform: uppercase;
            margin: 15px 0 8px 0;
            padding: 0;
            border-bottom: 1px solid #000;
            padding-bottom: 2px;
        }

        /* Force Projects section to start on new page */
        .projects-section {
            page-break-before: always;
            margin-top: 0;
        }

        /* Three-column layout for Skills section using table */
        .skills-grid {
            display: table;
            width: 100%;
            margin: 8px 0;
            table-layout: fixed;
        }

        .skills-row {
            display: table-row;
        }

        .skill-item {
            display: table-cell;
            width: 33.33%;
            padding: 2px 8px 2px 0;
            vertical-align: top;
        }

        h3 {
            font-size: 11pt;
            font-weight: bold;
            margin: 8px 0 4px 0;
            padding: 0;
            display: flex;
            justify-content: space-between;
            align-items: baseline;
        }

        .job-header {
            display: flex;
            justify-content: space-between;
            align-items: baseline;
            width: 100%;
        }

        .job-info {
            flex: 1;
        }

        .date-range {
            font-weight: normal;
            white-space: nowrap;
            margin-left: 20px;
        }

        p {
            margin: 4px 0;
            text-align: justify;
        }

        ul {
            margin: 4px 0;
            padding-left: 20px;
        }

        li {
            margin: 2px 0;
        }

        /* Employment history specific styling */
        .job-title {
            font-weight: bold;
        }

        .company {
            font-weight: normal;
        }

        /* Links styling */
        a {
            color: #000;
            text-decoration: underline;
        }

        /* Table styling for skills/languages */
        table {
            width: 100%;
            border-collapse: collapse;
            margin: 8px 0;
        }

        td {
            padding: 2px 8px;
            border: none;
            vertical-align: top;
        }
`

// pageRule expresses the page geometry as CSS for the library engine, which
// has no external margin options.
const pageRule = `
        @page {
            size: A4;
            margin: 0.5in;
        }
`

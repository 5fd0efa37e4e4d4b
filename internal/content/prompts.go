package content

import "fmt"

// exampleProcess is the sample AS-IS description shown to the model in both prompts.
const exampleProcess = `After billing and coding, some claims are reworked. These must be assigned back to the same associate who handled them previously. This requires a manual allocation process using different types of work queues. Due to manual handling, some claim data is often missing and must be filled in manually by the associate. Status updates are tracked manually via Excel or email.`

// ComparisonPromptTemplate is filled with the as-is process, proposed solution and
// feature catalog, in that order.
const ComparisonPromptTemplate = `You are a specialist in creating Mermaid.js diagrams for visualizing business process improvements. You work at a workflow automation company. A client has shared their current manual workflow (AS-IS PROCESS), and your team has proposed an improved version using your workflow tool (PROPOSED SOLUTION and WORKFLOW TOOL FEATURES).

Your task is to produce a single Mermaid.js diagram that illustrates the transition from the manual process to the automated solution.

### INPUTS:
AS-IS PROCESS:
%s

PROPOSED SOLUTION:
%s

WORKFLOW TOOL FEATURES:
%s

### EXAMPLE:
AS-IS PROCESS:
` + exampleProcess + `

PROPOSED SOLUTION:
Introduce a new process with dropdown selection for work queue types and predefined skill groups. Claims are bulk-uploaded via Excel with pre-assigned associates. Tasks are completed by associates, and statuses are updated in real-time through the workflow tool.

MERMAID DIAGRAM:
flowchart TD

%%%% ==== Styles ====
classDef asis fill:#ffcccc,stroke:#b30000,stroke-width:2px,color:#000
classDef tobe fill:#ccffcc,stroke:#006600,stroke-width:2px,color:#000
classDef common fill:#cce5ff,stroke:#004080,stroke-width:2px,color:#000

%%%% ==== Process Flow ====
A[Claim Data Available]:::common --> B[Work Queues Created]:::common

B --> C{{Claim Allocation}}

%%%% As-Is Path
C --> D[Manual Allocation of Rework Claims - Same Associate as Billing and Coding]:::asis
D --> E[Missing Data Points - To be filled manually by Associates]:::asis
E --> F[Associate Processes Claim]:::common
F --> G[Update Status - Manual Excel or Email]:::asis

%%%% To-Be Path
C --> H[Jobs Uploaded in Bulk via Excel - Pre-assigned Associate]:::tobe
H --> I[Work Queue Type Selected - Dropdown]:::tobe
I --> J[Skill Groups Created and Mapped - Based on Work Queue]:::tobe
J --> F
F --> K[Update Status in Workflow Tool - Real-time Tracking]:::tobe

%%%% End State
G --> L[Process Complete]:::common
K --> L

%%%% ==== Legend ====
subgraph Legend
M1[As-Is Manual]:::asis
M2[To-Be Workflow Tool]:::tobe
M3[Common Steps]:::common
end

### INSTRUCTIONS:
- Create one Mermaid.js diagram combining both AS-IS and PROPOSED processes.
- Consolidate shared steps into a single node to reduce duplication and improve readability.
- Use distinct colors to differentiate:
  - Manual (AS-IS) steps
  - Automated (TO-BE) steps
- Only include relevant features from the WORKFLOW TOOL FEATURES section.
- Wrap the diagram in a fenced code block tagged mermaid.
- In the Mermaid code:
  - Avoid using ` + "`=`" + ` in color codes.
  - Do not use parentheses inside square brackets.`

// AsIsPromptTemplate is filled with the as-is process.
const AsIsPromptTemplate = `You are an expert in creating Mermaid.js diagrams to visualize business process workflows. You work at a workflow automation company, and a client has provided a description of their current process (AS-IS PROCESS).

Your task is to generate a Mermaid.js flowchart that accurately represents the AS-IS PROCESS.

### INPUTS:
AS-IS PROCESS:
%s

### EXAMPLE:
AS-IS PROCESS:
` + exampleProcess + `

MERMAID DIAGRAM:
flowchart TD

%%%% ==== Styles ====
classDef asis fill:#f1f8e9,stroke:#388e3c,stroke-width:2px,color:#1b5e20;

%%%% ==== Process Flow ====
A[Claim Data Available]:::asis --> B[Work Queues Created]:::asis
B --> C[Claim Allocation]:::asis
C --> D[Manual Allocation of Rework Claims - Same Associate as Billing and Coding]:::asis
D --> E[Missing Data Points - To be filled manually by Associates]:::asis
E --> F[Associate Processes Claim]:::asis
F --> G[Update Status - Manual Excel or Email]:::asis
G --> L[Process Complete]:::asis

### INSTRUCTIONS:
- Use the provided AS-IS PROCESS description to generate the corresponding Mermaid.js flowchart.
- Ensure the Mermaid diagram clearly reflects the steps and issues described.
- Wrap the diagram in a fenced code block tagged mermaid.
- In the Mermaid code:
    - Do not use = in color codes.
    - Avoid using parentheses inside square brackets.`

// UserInstruction is sent as the user turn after the system prompt.
const UserInstruction = "Generate the Mermaid.js diagram for the process described above."

// AsIsPrompt builds the system prompt for diagramming the current process only.
func AsIsPrompt(asIs string) string {
	return fmt.Sprintf(AsIsPromptTemplate, asIs)
}

// ComparisonPrompt builds the system prompt for diagramming an as-is process
// against a proposed solution.
func ComparisonPrompt(asIs, proposed string, catalog *Catalog) string {
	return fmt.Sprintf(ComparisonPromptTemplate, asIs, proposed, catalog.String())
}
